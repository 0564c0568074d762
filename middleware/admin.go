package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests from users without the admin role flag.
// Must be registered after ValidateToken.
func RequireAdmin(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || !user.Role {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied. Admin only.",
		})
		c.Abort()
		return
	}
	c.Next()
}
