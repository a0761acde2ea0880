package imagestore

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader is the slice of the image host the services need: push a data-URI
// image into a folder and get back a public URL, or drop one by its public id.
type Uploader interface {
	Upload(ctx context.Context, base64Image, folder string) (string, error)
	Delete(ctx context.Context, publicID string) (bool, error)
}

// IsDataImage reports whether s looks like a base64 data-URI image, the only
// payload shape the upload endpoints accept from clients.
func IsDataImage(s string) bool {
	return strings.HasPrefix(s, "data:image")
}

type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, base64Image, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, base64Image, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) (bool, error) {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return false, fmt.Errorf("failed to delete image: %w", err)
	}
	return result.Result == "ok", nil
}
