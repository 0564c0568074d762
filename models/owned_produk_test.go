package models_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/models"
)

func TestNewUniqueCodeFormat(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]{16}$`)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := models.NewUniqueCode()
		require.NoError(t, err)
		assert.Regexp(t, hexPattern, code)
		seen[code] = true
	}
	assert.Len(t, seen, 200, "codes must not repeat")
}

func TestUniqueCodeConstraint(t *testing.T) {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Produk{},
		&models.Transaction{},
		&models.OwnedProduk{},
		&models.Addcart{},
	))

	user := models.User{Username: "tester", Email: "t@example.com", Password: "x", ProfilePicture: "x"}
	require.NoError(t, db.Create(&user).Error)
	produk := models.Produk{
		Nama:        "Buket Mawar",
		Price:       decimal.NewFromInt(50000),
		Description: "Buket bunga mawar segar",
		Category:    models.CategoryFreshFlower,
	}
	require.NoError(t, db.Create(&produk).Error)
	trx := models.Transaction{
		UserID:          user.UserID,
		ProdukID:        produk.ProdukID,
		ProdukQuantity:  2,
		TotalPrice:      decimal.NewFromInt(100000),
		Status:          models.TransactionStatusSuccess,
		TransactionDate: time.Now(),
	}
	require.NoError(t, db.Create(&trx).Error)

	first := models.OwnedProduk{
		UserID:        user.UserID,
		ProdukID:      produk.ProdukID,
		TransactionID: trx.TransactionID,
		UniqueCode:    "00112233aabbccdd",
		ProdukStatus:  models.OwnedStatusReceived,
	}
	require.NoError(t, db.Create(&first).Error)

	duplicate := models.OwnedProduk{
		UserID:        user.UserID,
		ProdukID:      produk.ProdukID,
		TransactionID: trx.TransactionID,
		UniqueCode:    "00112233aabbccdd",
		ProdukStatus:  models.OwnedStatusReceived,
	}
	err = db.Create(&duplicate).Error
	assert.Error(t, err, "the unique index must reject a colliding redemption code")
}
