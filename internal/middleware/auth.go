package middleware

import (
	"net/http"

	"folio-be/internal/session"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie set on login and cleared on logout
const CookieName = "portfolio_session"

const userIDKey = "user_id"

// SessionAuth returns a middleware that resolves the session cookie to a
// user ID and stores it in the gin context. Requests without a live session
// are rejected with 401 before any handler logic runs.
func SessionAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Not authenticated",
			})
			return
		}

		userID, err := store.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Not authenticated",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID set by SessionAuth.
// Only valid on routes behind the middleware.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
