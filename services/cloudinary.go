package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var Cloudinary *CloudinaryService

func InitializeCloudinary(cloudinaryURL string) error {
	if cloudinaryURL == "" {
		return fmt.Errorf("cloudinary URL is required")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	Cloudinary = &CloudinaryService{cld: cld}
	return nil
}

// UploadImage uploads an image file to Cloudinary under the given folder
// (banners, gallery, products, experts) and returns the upload result.
func (cs *CloudinaryService) UploadImage(file multipart.File, folder string) (*uploader.UploadResult, error) {
	ctx := context.Background()

	publicID := fmt.Sprintf("%s/%d", folder, time.Now().UnixNano())

	useFilename := true
	uniqueFilename := true
	overwrite := false
	result, err := cs.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		UseFilename:    &useFilename,
		UniqueFilename: &uniqueFilename,
		Overwrite:      &overwrite,
		ResourceType:   "image",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	// Normalize URLs to HTTPS to avoid mixed-content blocking
	if result != nil {
		if result.URL != "" {
			result.URL = forceHTTPS(result.URL)
		}
		if result.SecureURL != "" {
			result.SecureURL = forceHTTPS(result.SecureURL)
		} else if result.URL != "" {
			result.SecureURL = result.URL
		}
	}

	return result, nil
}

func (cs *CloudinaryService) DeleteImage(publicID string) error {
	ctx := context.Background()

	_, err := cs.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

func forceHTTPS(url string) string {
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}
