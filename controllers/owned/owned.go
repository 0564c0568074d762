package ownedController

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/middleware"
	"github.com/vridaa/gift-bouqet-be/models"
)

// GET /api/owned-produk (authenticated)
func GetOwnedProduk(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var owned []models.OwnedProduk
		if err := db.Where("user_id = ?", user.UserID).
			Preload("Produk").
			Preload("Transaction").
			Order("owned_produk_id DESC").
			Find(&owned).Error; err != nil {
			log.Println("failed to fetch owned produk:", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"ownedProduk": owned},
		})
	}
}

// GET /api/owned-produk/:id (authenticated)
//
// Scoped to the requester: someone else's voucher is indistinguishable from a
// missing one.
func GetOwnedProdukByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		id, ok := idParam(c)
		if !ok {
			return
		}

		var owned models.OwnedProduk
		err := db.Where("owned_produk_id = ? AND user_id = ?", id, user.UserID).
			Preload("Produk").
			Preload("Transaction").
			First(&owned).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound(c)
			} else {
				serverError(c)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"ownedProduk": owned},
		})
	}
}

type CreateOwnedProdukInput struct {
	ProdukID      uint `json:"produkID" binding:"required"`
	TransactionID uint `json:"transactionID" binding:"required"`
}

// POST /api/owned-produk (authenticated)
//
// Mints a single voucher against one of the requester's own transactions.
func CreateOwnedProduk(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input CreateOwnedProdukInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Validation error",
				"errors":  err.Error(),
			})
			return
		}

		var trx models.Transaction
		err := db.Where("transaction_id = ? AND user_id = ?", input.TransactionID, user.UserID).
			First(&trx).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"status":  "error",
					"message": "Transaction not found",
				})
			} else {
				serverError(c)
			}
			return
		}

		code, err := models.NewUniqueCode()
		if err != nil {
			serverError(c)
			return
		}

		owned := models.OwnedProduk{
			UserID:        user.UserID,
			ProdukID:      input.ProdukID,
			TransactionID: trx.TransactionID,
			UniqueCode:    code,
			ProdukStatus:  models.OwnedStatusReceived,
		}
		if err := db.Create(&owned).Error; err != nil {
			log.Println("failed to create owned produk:", err)
			serverError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Order created",
			"data":    gin.H{"ownedProduk": owned},
		})
	}
}

// PUT /api/owned-produk/:id/use (authenticated)
//
// Redeems a voucher. The ownership check runs before the state check, so a
// voucher owned by someone else reports 404 rather than leaking its state.
// The completed status is terminal: a second call conflicts.
func UseOwnedProduk(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		id, ok := idParam(c)
		if !ok {
			return
		}

		var owned models.OwnedProduk
		err := db.Where("owned_produk_id = ? AND user_id = ?", id, user.UserID).
			First(&owned).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound(c)
			} else {
				serverError(c)
			}
			return
		}

		if owned.ProdukStatus == models.OwnedStatusCompleted {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Order is already completed",
			})
			return
		}

		if err := db.Model(&owned).Update("produk_status", models.OwnedStatusCompleted).Error; err != nil {
			log.Println("failed to update produk status:", err)
			serverError(c)
			return
		}

		if err := db.Where("owned_produk_id = ?", owned.OwnedProdukID).
			Preload("Produk").
			Preload("Transaction").
			First(&owned).Error; err != nil {
			serverError(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Order status updated",
			"data":    gin.H{"ownedProduk": owned},
		})
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid owned produk ID",
		})
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  "error",
		"message": "Order not found",
	})
}

func serverError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
	})
}
