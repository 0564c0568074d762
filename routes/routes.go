package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/config"
	"github.com/vridaa/gift-bouqet-be/storage"
)

// SetupRoutes is the single entry-point that wires up every route group
// under the /api prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *storage.ImageStore, cfg *config.AppConfig) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db, store, cfg)
	SetupProdukRoutes(api, db, store, cfg)
	SetupTransactionRoutes(api, db, cfg)
	SetupOwnedProdukRoutes(api, db, cfg)
}
