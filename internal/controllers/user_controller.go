package controllers

import (
	"errors"
	"net/http"

	"folio-be/internal/middleware"
	"folio-be/internal/models"
	"folio-be/internal/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// UpdateProfile handles PUT /api/users/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update profile"})
		return
	}

	userID := middleware.CurrentUserID(c)

	user, err := uc.userService.UpdateProfile(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}
