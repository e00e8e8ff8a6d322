package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"report2clean/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// reportImageFolder groups every report image under one cloudinary folder.
const reportImageFolder = "report2clean/reports"

// StorageService uploads report images and returns their public URLs.
type StorageService interface {
	// UploadReportImage streams one multipart file to storage and returns
	// its https URL.
	UploadReportImage(ctx context.Context, file *multipart.FileHeader) (string, error)
	// DeleteByURL removes a previously uploaded image given its URL.
	DeleteByURL(ctx context.Context, url string) error
}

// CloudinaryStorage is the production implementation.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage builds the storage service from config credentials.
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) UploadReportImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	result, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: reportImageFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload returned no URL")
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStorage) DeleteByURL(ctx context.Context, url string) error {
	publicID := publicIDFromURL(url)
	if publicID == "" {
		return fmt.Errorf("cannot derive public ID from %q", url)
	}
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	return nil
}
