package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/config"
	productController "github.com/vridaa/gift-bouqet-be/controllers/product"
	"github.com/vridaa/gift-bouqet-be/middleware"
	"github.com/vridaa/gift-bouqet-be/storage"
)

// SetupProdukRoutes registers all /api/produk/* endpoints. Reads are public
// (with optional auth for the wishlist join); writes require the admin role.
func SetupProdukRoutes(api *gin.RouterGroup, db *gorm.DB, store *storage.ImageStore, cfg *config.AppConfig) {
	produkGroup := api.Group("/produk")
	{
		produkGroup.GET("", middleware.OptionalToken(db, cfg.JWTSecret), productController.GetAllProduk(db, cfg))
		produkGroup.GET("/:id", middleware.OptionalToken(db, cfg.JWTSecret), productController.GetProdukByID(db, cfg))

		produkGroup.GET("/:id/addcart",
			middleware.ValidateToken(db, cfg.JWTSecret),
			productController.ToggleAddcart(db))

		adminGroup := produkGroup.Group("")
		adminGroup.Use(middleware.ValidateToken(db, cfg.JWTSecret), middleware.RequireAdmin)
		{
			adminGroup.POST("", productController.CreateProduk(db, store, cfg))
			adminGroup.PUT("/:id", productController.UpdateProduk(db, store, cfg))
			adminGroup.DELETE("/:id", productController.DeleteProduk(db, store))
		}
	}
}
