package transactionController

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/middleware"
	"github.com/vridaa/gift-bouqet-be/models"
)

type CreateTransactionInput struct {
	ProdukID       uint `json:"produkID" binding:"required"`
	ProdukQuantity int  `json:"produkQuantity" binding:"required,min=1"`
}

// POST /api/transactions (authenticated)
//
// Records the purchase and mints one voucher per unit bought. The transaction
// row and all its vouchers are written inside a single database transaction:
// any failure rolls the whole purchase back, so a transaction row can never be
// observed with fewer vouchers than its quantity.
func CreateTransaction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input CreateTransactionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Validation error",
				"errors":  err.Error(),
			})
			return
		}

		var produk models.Produk
		var trx models.Transaction
		var owned []models.OwnedProduk

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&produk, input.ProdukID).Error; err != nil {
				return err
			}

			total := produk.Price.Mul(decimal.NewFromInt(int64(input.ProdukQuantity)))
			trx = models.Transaction{
				UserID:          user.UserID,
				ProdukID:        produk.ProdukID,
				ProdukQuantity:  input.ProdukQuantity,
				TotalPrice:      total,
				Status:          models.TransactionStatusSuccess,
				TransactionDate: time.Now(),
			}
			if err := tx.Create(&trx).Error; err != nil {
				return err
			}

			owned = make([]models.OwnedProduk, 0, input.ProdukQuantity)
			for i := 0; i < input.ProdukQuantity; i++ {
				code, err := models.NewUniqueCode()
				if err != nil {
					return err
				}
				item := models.OwnedProduk{
					UserID:        user.UserID,
					ProdukID:      produk.ProdukID,
					TransactionID: trx.TransactionID,
					UniqueCode:    code,
					ProdukStatus:  models.OwnedStatusReceived,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				owned = append(owned, item)
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"status":  "error",
					"message": "Produk not found",
				})
				return
			}
			log.Println("failed to create transaction:", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Internal server error",
			})
			return
		}

		trx.Produk = &produk
		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Transaction created",
			"data": gin.H{
				"transaction": trx,
				"ownedProduk": owned,
			},
		})
	}
}

// GET /api/transactions/admin/all (admin)
func GetAllTransactionsAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transactions []models.Transaction
		if err := db.Preload("Produk").Order("transaction_date DESC").Find(&transactions).Error; err != nil {
			log.Println("failed to fetch transactions:", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Internal server error",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"transactions": transactions},
		})
	}
}
