package productController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/config"
	"github.com/vridaa/gift-bouqet-be/models"
	"github.com/vridaa/gift-bouqet-be/storage"
)

// POST /api/produk (admin, multipart)
//
// The row is created first, then the optional image is uploaded under the
// produk's deterministic object ID and the URL linked only after the upload
// succeeds. A failed upload leaves the produk on the placeholder image.
func CreateProduk(db *gorm.DB, store *storage.ImageStore, cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		nama := c.PostForm("nama")
		priceStr := c.PostForm("price")
		description := c.PostForm("description")
		category := c.PostForm("category")

		if nama == "" || priceStr == "" || description == "" || category == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "nama, price, description and category are required",
			})
			return
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil || !price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid price",
			})
			return
		}
		if !models.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid category",
			})
			return
		}

		produk := models.Produk{
			Nama:        nama,
			Price:       price,
			Description: description,
			Category:    category,
		}
		if err := db.Create(&produk).Error; err != nil {
			log.Println("failed to create produk:", err)
			serverError(c)
			return
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
			if err := db.Model(&produk).Update("image_url", url).Error; err != nil {
				serverError(c)
				return
			}
			produk.ImageURL = url
		}

		if produk.ImageURL == "" {
			produk.ImageURL = cfg.PlaceholderImageURL
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Produk created",
			"data":    gin.H{"produk": produk},
		})
	}
}
