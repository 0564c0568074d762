package ownedController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/auth"
	"github.com/vridaa/gift-bouqet-be/config"
	"github.com/vridaa/gift-bouqet-be/models"
	"github.com/vridaa/gift-bouqet-be/routes"
)

var testSecret = []byte("test-secret-key")

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.AppConfig{JWTSecret: testSecret}
	routes.SetupOwnedProdukRoutes(r.Group("/api"), db, cfg)
	return r
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username:       "tester",
		Email:          email,
		ProfilePicture: "https://cdn.test/assets/profilepicture/pp-default.jpg",
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedVoucher creates a produk, a transaction and one voucher for user.
func seedVoucher(t *testing.T, db *gorm.DB, user *models.User) *models.OwnedProduk {
	t.Helper()
	produk := &models.Produk{
		Nama:        "Boneka Beruang",
		Price:       decimal.NewFromInt(75000),
		Description: "Boneka beruang besar",
		Category:    models.CategoryPlushToy,
	}
	require.NoError(t, db.Create(produk).Error)

	trx := &models.Transaction{
		UserID:          user.UserID,
		ProdukID:        produk.ProdukID,
		ProdukQuantity:  1,
		TotalPrice:      produk.Price,
		Status:          models.TransactionStatusSuccess,
		TransactionDate: time.Now(),
	}
	require.NoError(t, db.Create(trx).Error)

	code, err := models.NewUniqueCode()
	require.NoError(t, err)
	owned := &models.OwnedProduk{
		UserID:        user.UserID,
		ProdukID:      produk.ProdukID,
		TransactionID: trx.TransactionID,
		UniqueCode:    code,
		ProdukStatus:  models.OwnedStatusReceived,
	}
	require.NoError(t, db.Create(owned).Error)
	return owned
}

func bearer(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(user, testSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUseOwnedProdukIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := createUser(t, db, "owner@example.com")
	owned := seedVoucher(t, db, user)

	path := fmt.Sprintf("/api/owned-produk/%d/use", owned.OwnedProdukID)

	rec := do(r, http.MethodPut, path, bearer(t, user), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.OwnedProduk
	require.NoError(t, db.First(&updated, owned.OwnedProdukID).Error)
	assert.Equal(t, models.OwnedStatusCompleted, updated.ProdukStatus)

	// Second redemption conflicts.
	rec = do(r, http.MethodPut, path, bearer(t, user), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUseOwnedProdukWrongOwnerIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	owned := seedVoucher(t, db, owner)

	rec := do(r, http.MethodPut,
		fmt.Sprintf("/api/owned-produk/%d/use", owned.OwnedProdukID),
		bearer(t, other), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code,
		"ownership check must precede the state check")

	var unchanged models.OwnedProduk
	require.NoError(t, db.First(&unchanged, owned.OwnedProdukID).Error)
	assert.Equal(t, models.OwnedStatusReceived, unchanged.ProdukStatus)
}

func TestGetOwnedProdukScopedToRequester(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	owned := seedVoucher(t, db, owner)

	rec := do(r, http.MethodGet, "/api/owned-produk", bearer(t, owner), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data struct {
			OwnedProduk []models.OwnedProduk `json:"ownedProduk"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.OwnedProduk, 1)
	assert.Equal(t, owned.UniqueCode, resp.Data.OwnedProduk[0].UniqueCode)

	rec = do(r, http.MethodGet, "/api/owned-produk", bearer(t, other), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.OwnedProduk)

	rec = do(r, http.MethodGet,
		fmt.Sprintf("/api/owned-produk/%d", owned.OwnedProdukID),
		bearer(t, other), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOwnedProdukAgainstOwnTransaction(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := createUser(t, db, "owner@example.com")
	seeded := seedVoucher(t, db, user)

	rec := do(r, http.MethodPost, "/api/owned-produk", bearer(t, user), map[string]interface{}{
		"produkID":      seeded.ProdukID,
		"transactionID": seeded.TransactionID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.OwnedProduk{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCreateOwnedProdukForeignTransactionIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	seeded := seedVoucher(t, db, owner)

	rec := do(r, http.MethodPost, "/api/owned-produk", bearer(t, other), map[string]interface{}{
		"produkID":      seeded.ProdukID,
		"transactionID": seeded.TransactionID,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
