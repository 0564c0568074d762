package productController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vridaa/gift-bouqet-be/models"
	"github.com/vridaa/gift-bouqet-be/storage"
)

// DELETE /api/produk/:id (admin)
//
// Removes the produk together with its dependent rows, then deletes its
// stored image. The shared placeholder is never deleted from storage.
func DeleteProduk(db *gorm.DB, store *storage.ImageStore) gin.HandlerFunc {
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

		imageURL := produk.ImageURL

		if err := db.Select(clause.Associations).Delete(&produk).Error; err != nil {
			log.Println("failed to delete produk:", err)
			serverError(c)
			return
		}

		if store != nil && !store.IsPlaceholder(imageURL) {
			if err := store.Delete(c.Request.Context(),
				storage.ObjectID("produk", produk.ProdukID)); err != nil {
				log.Println("failed to delete produk image:", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Produk deleted",
		})
	}
}
