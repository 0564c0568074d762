package productController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vridaa/gift-bouqet-be/middleware"
	"github.com/vridaa/gift-bouqet-be/models"
)

// GET /api/produk/:id/addcart (authenticated)
//
// Toggles the requester's wishlist flag for the produk. The conditional
// delete-or-insert runs inside one transaction so two concurrent toggles for
// the same (user, produk) pair cannot lose an update: the delete's affected
// row count decides the branch, and the insert ignores a conflicting row.
func ToggleAddcart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
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

		var wishlisted bool
		err := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Where("user_id = ? AND produk_id = ?", user.UserID, produk.ProdukID).
				Delete(&models.Addcart{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				wishlisted = false
				return nil
			}

			entry := models.Addcart{
				UserID:    user.UserID,
				ProdukID:  produk.ProdukID,
				IsAddcart: true,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
				return err
			}
			wishlisted = true
			return nil
		})
		if err != nil {
			log.Println("failed to toggle addcart:", err)
			serverError(c)
			return
		}

		if wishlisted {
			c.JSON(http.StatusCreated, gin.H{
				"status":  "success",
				"message": "Produk added to wishlist",
				"data":    gin.H{"isAddcart": true},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Produk removed from wishlist",
			"data":    gin.H{"isAddcart": false},
		})
	}
}
