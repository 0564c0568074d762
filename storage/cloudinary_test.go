package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vridaa/gift-bouqet-be/storage"
)

func TestObjectID(t *testing.T) {
	assert.Equal(t, "assets/produk/produk-42", storage.ObjectID("produk", 42))
	assert.Equal(t, "assets/profilepicture/profilepicture-7", storage.ObjectID("profilepicture", 7))
}

func TestIsPlaceholderURL(t *testing.T) {
	placeholder := "https://cdn.test/assets/image-placeholder.jpg"

	assert.True(t, storage.IsPlaceholderURL("", placeholder))
	assert.True(t, storage.IsPlaceholderURL(placeholder, placeholder))
	assert.True(t, storage.IsPlaceholderURL(
		"https://other.cdn/v123/assets/image-placeholder.jpg", placeholder))
	assert.False(t, storage.IsPlaceholderURL(
		"https://cdn.test/assets/produk/produk-42.jpg", placeholder))
}
