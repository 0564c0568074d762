package models

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	// OwnedStatusReceived is the initial status of a freshly minted voucher.
	OwnedStatusReceived = "pesanan diterima"
	// OwnedStatusCompleted is terminal: a completed voucher cannot be used again.
	OwnedStatusCompleted = "Pesanan Selesai"
)

type OwnedProduk struct {
	OwnedProdukID uint         `gorm:"primaryKey;autoIncrement" json:"ownedProdukID"`
	UserID        uint         `gorm:"index;not null" json:"userID"`
	ProdukID      uint         `gorm:"not null" json:"produkID"`
	Produk        *Produk      `gorm:"foreignKey:ProdukID" json:"produk,omitempty"`
	TransactionID uint         `gorm:"index;not null" json:"transactionID"`
	Transaction   *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
	UniqueCode    string       `gorm:"size:32;uniqueIndex;not null" json:"uniqueCode"`
	ProdukStatus  string       `gorm:"size:50;not null" json:"produkStatus"`
}

// NewUniqueCode returns a 16 hex character redemption code from 8 random
// bytes. Collisions are rejected by the unique index on unique_code.
func NewUniqueCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
