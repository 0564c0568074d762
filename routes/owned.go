package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/config"
	ownedController "github.com/vridaa/gift-bouqet-be/controllers/owned"
	"github.com/vridaa/gift-bouqet-be/middleware"
)

// SetupOwnedProdukRoutes registers all /api/owned-produk/* endpoints.
func SetupOwnedProdukRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.AppConfig) {
	ownedGroup := api.Group("/owned-produk")
	ownedGroup.Use(middleware.ValidateToken(db, cfg.JWTSecret))
	{
		ownedGroup.GET("", ownedController.GetOwnedProduk(db))
		ownedGroup.POST("", ownedController.CreateOwnedProduk(db))
		ownedGroup.GET("/:id", ownedController.GetOwnedProdukByID(db))
		ownedGroup.PUT("/:id/use", ownedController.UseOwnedProduk(db))
	}
}
