package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CategoryFreshFlower = "fresh-flower"
	CategoryArtificial  = "artificial"
	CategoryPlushToy    = "plush-toy"
	CategoryCustom      = "custom"
	CategoryCashGift    = "cash-gift"
	CategorySnack       = "snack"
)

type Produk struct {
	ProdukID     uint            `gorm:"primaryKey;autoIncrement" json:"produkID"`
	Nama         string          `gorm:"not null" json:"nama"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description  string          `gorm:"not null" json:"description"`
	Category     string          `gorm:"size:30;not null" json:"category"`
	ImageURL     string          `gorm:"size:255" json:"imageUrl"`
	Transactions []Transaction   `gorm:"foreignKey:ProdukID;constraint:OnDelete:CASCADE" json:"-"`
	OwnedProduk  []OwnedProduk   `gorm:"foreignKey:ProdukID;constraint:OnDelete:CASCADE" json:"-"`
	AddcartRows  []Addcart       `gorm:"foreignKey:ProdukID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ValidCategory reports whether category is one of the known produk categories.
func ValidCategory(category string) bool {
	switch category {
	case CategoryFreshFlower, CategoryArtificial, CategoryPlushToy,
		CategoryCustom, CategoryCashGift, CategorySnack:
		return true
	}
	return false
}
