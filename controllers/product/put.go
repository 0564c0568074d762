package productController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/config"
	"github.com/vridaa/gift-bouqet-be/models"
	"github.com/vridaa/gift-bouqet-be/storage"
)

// PUT /api/produk/:id (admin, multipart)
//
// Provided fields replace the stored ones. A replacement image is uploaded
// under the produk's deterministic object ID, so the previous object is
// overwritten in storage; the row is only updated once the upload succeeded.
func UpdateProduk(db *gorm.DB, store *storage.ImageStore, cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := produkIDParam(c)
		if !ok {
			return
		}

		var produk models.Produk
		if err := db.First(&produk, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				produkNotFound(c)
			} else {
				serverError(c)
			}
			return
		}

		updates := make(map[string]interface{})
		if nama := c.PostForm("nama"); nama != "" {
			updates["nama"] = nama
		}
		if priceStr := c.PostForm("price"); priceStr != "" {
			price, err := decimal.NewFromString(priceStr)
			if err != nil || !price.IsPositive() {
				c.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": "Invalid price",
				})
				return
			}
			updates["price"] = price
		}
		if description := c.PostForm("description"); description != "" {
			updates["description"] = description
		}
		if category := c.PostForm("category"); category != "" {
			if !models.ValidCategory(category) {
				c.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": "Invalid category",
				})
				return
			}
			updates["category"] = category
		}

		if file, _, err := c.Request.FormFile("image"); err == nil && store != nil {
			defer file.Close()
			url, uploadErr := store.Upload(c.Request.Context(), file,
				storage.ObjectID("produk", produk.ProdukID))
			if uploadErr != nil {
				log.Println("produk image upload failed:", uploadErr)
				c.JSON(http.StatusInternalServerError, gin.H{
					"status":  "error",
					"message": "Failed to upload image",
				})
				return
			}
			updates["image_url"] = url
		}

		if len(updates) > 0 {
			if err := db.Model(&produk).Updates(updates).Error; err != nil {
				log.Println("failed to update produk:", err)
				serverError(c)
				return
			}
		}

		if produk.ImageURL == "" {
			produk.ImageURL = cfg.PlaceholderImageURL
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Produk updated",
			"data":    gin.H{"produk": produk},
		})
	}
}
