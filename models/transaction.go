package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatusSuccess is the only status the purchase flow writes. There
// is no pending state: payment confirmation happens outside this system.
const TransactionStatusSuccess = "success"

type Transaction struct {
	TransactionID   uint            `gorm:"primaryKey;autoIncrement" json:"transactionID"`
	UserID          uint            `gorm:"index;not null" json:"userID"`
	ProdukID        uint            `gorm:"index;not null" json:"produkID"`
	Produk          *Produk         `gorm:"foreignKey:ProdukID" json:"produk,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	ProdukQuantity  int             `gorm:"not null" json:"produkQuantity"`
	Status          string          `gorm:"size:50;not null" json:"status"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	OwnedProduk     []OwnedProduk   `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"-"`
}
