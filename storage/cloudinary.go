package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageStore wraps the Cloudinary client holding product and profile images.
type ImageStore struct {
	cld            *cloudinary.Cloudinary
	placeholderURL string
}

func New(cloudinaryURL, placeholderURL string) (*ImageStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &ImageStore{cld: cld, placeholderURL: placeholderURL}, nil
}

// ObjectID builds the deterministic public ID for an entity image,
// e.g. assets/produk/produk-42. Re-uploading the same entity's image
// overwrites the previous object in place.
func ObjectID(kind string, id uint) string {
	return fmt.Sprintf("assets/%s/%s-%d", kind, kind, id)
}

// Upload stores file under publicID and returns the public URL. The caller
// must persist the URL only after Upload succeeds.
func (s *ImageStore) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:  publicID,
		Overwrite: api.Bool(true),
		Format:    "jpg",
	})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}

// Delete removes the object stored under publicID.
func (s *ImageStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// IsPlaceholder reports whether url is the shared placeholder image. The
// placeholder is never deleted from storage.
func (s *ImageStore) IsPlaceholder(url string) bool {
	return IsPlaceholderURL(url, s.placeholderURL)
}

func IsPlaceholderURL(url, placeholderURL string) bool {
	return url == "" || url == placeholderURL || strings.Contains(url, "image-placeholder")
}
