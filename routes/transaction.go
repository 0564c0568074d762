package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/config"
	transactionController "github.com/vridaa/gift-bouqet-be/controllers/transaction"
	"github.com/vridaa/gift-bouqet-be/middleware"
)

// SetupTransactionRoutes registers all /api/transactions/* endpoints.
func SetupTransactionRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.AppConfig) {
	trxGroup := api.Group("/transactions")
	trxGroup.Use(middleware.ValidateToken(db, cfg.JWTSecret))
	{
		trxGroup.POST("", transactionController.CreateTransaction(db))

		adminGroup := trxGroup.Group("/admin")
		adminGroup.Use(middleware.RequireAdmin)
		{
			adminGroup.GET("/all", transactionController.GetAllTransactionsAdmin(db))
			adminGroup.GET("/export-excel", transactionController.ExportTransactionsToExcel(db))
		}
	}
}
