package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/auth"
	"github.com/vridaa/gift-bouqet-be/models"
)

const userContextKey = "user"

// ValidateToken authenticates the request from its Bearer token. The token
// subject is re-resolved against the user table on every request, so a
// deleted account is rejected even while its token is still unexpired.
func ValidateToken(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, db, secret)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or missing access token",
			})
			c.Abort()
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalToken resolves the requester when a valid token is present and
// leaves the request anonymous otherwise. Used on public catalog reads so the
// wishlist flag can be joined in for logged-in users.
func OptionalToken(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, db, secret); ok {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by ValidateToken, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

func resolveUser(c *gin.Context, db *gorm.DB, secret []byte) (*models.User, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		return nil, false
	}

	claims, err := auth.ParseToken(tokenString, secret)
	if err != nil {
		return nil, false
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, false
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, false
	}
	return &user, true
}
