package authController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vridaa/gift-bouqet-be/auth"
	"github.com/vridaa/gift-bouqet-be/config"
	"github.com/vridaa/gift-bouqet-be/middleware"
	"github.com/vridaa/gift-bouqet-be/models"
	"github.com/vridaa/gift-bouqet-be/storage"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(db *gorm.DB, cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Validation error",
				"errors":  err.Error(),
			})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Email is already registered",
			})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			serverError(c)
			return
		}

		user := models.User{
			Username:       input.Username,
			Email:          input.Email,
			ProfilePicture: cfg.DefaultProfilePictureURL,
		}
		if err := user.SetPassword(input.Password); err != nil {
			serverError(c)
			return
		}
		if err := db.Create(&user).Error; err != nil {
			log.Println("failed to create user:", err)
			serverError(c)
			return
		}

		token, err := auth.GenerateToken(&user, cfg.JWTSecret)
		if err != nil {
			serverError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "User registered",
			"data":    gin.H{"user": user, "token": token},
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Validation error",
				"errors":  err.Error(),
			})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid email or password",
			})
			return
		}
		if !user.CheckPassword(input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid email or password",
			})
			return
		}

		token, err := auth.GenerateToken(&user, cfg.JWTSecret)
		if err != nil {
			serverError(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Login successful",
			"data":    gin.H{"user": user, "token": token},
		})
	}
}

// GET /api/auth/profile
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"user": user},
		})
	}
}

// PUT /api/auth/profile
//
// Multipart form: username, email, currentPassword, newPassword and an
// optional profilePicture file. The picture is uploaded before the row is
// saved so a storage failure never leaves a dangling URL.
func UpdateProfile(db *gorm.DB, store *storage.ImageStore, cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		username := c.PostForm("username")
		email := c.PostForm("email")
		currentPassword := c.PostForm("currentPassword")
		newPassword := c.PostForm("newPassword")

		if currentPassword != "" || newPassword != "" {
			if currentPassword == "" || newPassword == "" {
				c.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": "Both currentPassword and newPassword are required to change the password",
				})
				return
			}
			if !user.CheckPassword(currentPassword) {
				c.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": "Current password is invalid",
				})
				return
			}
			if len(newPassword) < 8 {
				c.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": "New password must be at least 8 characters",
				})
				return
			}
			if err := user.SetPassword(newPassword); err != nil {
				serverError(c)
				return
			}
		}

		if email != "" && email != user.Email {
			var existing models.User
			err := db.Where("email = ?", email).First(&existing).Error
			if err == nil {
				c.JSON(http.StatusConflict, gin.H{
					"status":  "error",
					"message": "Email is already registered",
				})
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				serverError(c)
				return
			}
			user.Email = email
		}
		if username != "" {
			user.Username = username
		}

		if file, _, err := c.Request.FormFile("profilePicture"); err == nil && store != nil {
			defer file.Close()
			url, uploadErr := store.Upload(c.Request.Context(), file,
				storage.ObjectID("profilepicture", user.UserID))
			if uploadErr != nil {
				log.Println("profile picture upload failed:", uploadErr)
				c.JSON(http.StatusInternalServerError, gin.H{
					"status":  "error",
					"message": "Failed to upload profile picture",
				})
				return
			}
			user.ProfilePicture = url
		}

		if err := db.Save(user).Error; err != nil {
			log.Println("failed to update profile:", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Profile updated",
			"data":    gin.H{"user": user},
		})
	}
}

// DELETE /api/auth/profile
//
// Removes the account together with its transactions, vouchers and wishlist
// rows. The stored profile picture is deleted best effort; the placeholder is
// shared and never removed.
func DeleteAccount(db *gorm.DB, store *storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		if store != nil && !store.IsPlaceholder(user.ProfilePicture) {
			if err := store.Delete(c.Request.Context(),
				storage.ObjectID("profilepicture", user.UserID)); err != nil {
				log.Println("failed to delete profile picture:", err)
			}
		}

		if err := db.Select(clause.Associations).Delete(user).Error; err != nil {
			log.Println("failed to delete account:", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Account deleted",
		})
	}
}

func serverError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
	})
}
