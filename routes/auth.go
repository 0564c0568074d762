package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/config"
	authController "github.com/vridaa/gift-bouqet-be/controllers/auth"
	"github.com/vridaa/gift-bouqet-be/middleware"
	"github.com/vridaa/gift-bouqet-be/storage"
)

// SetupAuthRoutes registers all /api/auth/* endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, store *storage.ImageStore, cfg *config.AppConfig) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authController.Register(db, cfg))
		authGroup.POST("/login", authController.Login(db, cfg))

		profile := authGroup.Group("/profile")
		profile.Use(middleware.ValidateToken(db, cfg.JWTSecret))
		{
			profile.GET("", authController.GetProfile())
			profile.PUT("", authController.UpdateProfile(db, store, cfg))
			profile.DELETE("", authController.DeleteAccount(db, store))
		}
	}
}
