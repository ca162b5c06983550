package controllers

import (
	"errors"
	"net/http"

	"folio-be/internal/middleware"
	"folio-be/internal/models"
	"folio-be/internal/repository"
	"folio-be/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService  service.AuthService
	userService  service.UserService
	cookieMaxAge int  // seconds
	secureCookie bool // true in production
}

func NewAuthController(authService service.AuthService, userService service.UserService, cookieMaxAge int, secureCookie bool) *AuthController {
	return &AuthController{
		authService:  authService,
		userService:  userService,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

func (ac *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", ac.secureCookie, true)
}

// Register handles POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
		return
	}

	user, err := ac.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
		}
		return
	}

	// No session on registration - the user logs in afterward
	c.JSON(http.StatusOK, user)
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed"})
		return
	}

	user, token, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Login failed"})
		return
	}

	ac.setSessionCookie(c, token, ac.cookieMaxAge)
	c.JSON(http.StatusOK, user)
}

// Logout handles POST /api/auth/logout. Idempotent: succeeds with or
// without a live session.
func (ac *AuthController) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.CookieName)
	if err := ac.authService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout failed"})
		return
	}

	ac.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	user, err := ac.userService.Get(userID)
	if err != nil {
		// Session can outlive the row if the user was deleted out-of-band
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
