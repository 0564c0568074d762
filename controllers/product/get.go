package productController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/config"
	"github.com/vridaa/gift-bouqet-be/middleware"
	"github.com/vridaa/gift-bouqet-be/models"
)

// produkResponse is a catalog row with the requester's wishlist flag joined
// in and the placeholder substituted for a missing image.
type produkResponse struct {
	models.Produk
	IsAddcart bool `json:"isAddcart"`
}

// GET /api/produk
// Public; a valid bearer token additionally resolves the wishlist flags.
func GetAllProduk(db *gorm.DB, cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var produk []models.Produk
		if err := db.Order("created_at DESC").Find(&produk).Error; err != nil {
			serverError(c)
			return
		}

		flags, err := wishlistFlags(db, middleware.CurrentUser(c))
		if err != nil {
			serverError(c)
			return
		}

		out := make([]produkResponse, 0, len(produk))
		for _, p := range produk {
			if p.ImageURL == "" {
				p.ImageURL = cfg.PlaceholderImageURL
			}
			out = append(out, produkResponse{Produk: p, IsAddcart: flags[p.ProdukID]})
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"produk": out},
		})
	}
}

// GET /api/produk/:id
func GetProdukByID(db *gorm.DB, cfg *config.AppConfig) gin.HandlerFunc {
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

		flags, err := wishlistFlags(db, middleware.CurrentUser(c))
		if err != nil {
			serverError(c)
			return
		}
		if produk.ImageURL == "" {
			produk.ImageURL = cfg.PlaceholderImageURL
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data": gin.H{
				"produk": produkResponse{Produk: produk, IsAddcart: flags[produk.ProdukID]},
			},
		})
	}
}

// wishlistFlags returns the produk IDs user has wishlisted. An anonymous
// requester gets an empty map.
func wishlistFlags(db *gorm.DB, user *models.User) (map[uint]bool, error) {
	flags := make(map[uint]bool)
	if user == nil {
		return flags, nil
	}
	var rows []models.Addcart
	if err := db.Where("user_id = ? AND is_addcart = ?", user.UserID, true).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		flags[r.ProdukID] = true
	}
	return flags, nil
}

func produkIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid produk ID",
		})
		return 0, false
	}
	return uint(id), true
}

func produkNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  "error",
		"message": "Produk not found",
	})
}

func serverError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
	})
}
