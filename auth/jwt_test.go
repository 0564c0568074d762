package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vridaa/gift-bouqet-be/auth"
	"github.com/vridaa/gift-bouqet-be/models"
)

var testSecret = []byte("test-secret-key")

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{UserID: 7, Email: "putri@example.com", Role: true}

	token, err := auth.GenerateToken(user, testSecret)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "putri@example.com", claims.Email)
	assert.True(t, claims.Role)
	assert.NotEmpty(t, claims.ID, "tokens carry a jti")

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)
	assert.WithinDuration(t, time.Now().Add(auth.TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{UserID: 7, Email: "putri@example.com"}
	token, err := auth.GenerateToken(user, testSecret)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, []byte("another-secret"))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	claims := auth.Claims{
		Email: "putri@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := auth.ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
