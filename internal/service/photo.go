package service

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pawhaven/shelter-backend/config"
)

// PhotoService stores pet photos in S3 and hands back their public URLs.
type PhotoService struct {
	storage *config.S3Config
}

// NewPhotoService creates a new PhotoService instance
func NewPhotoService(storage *config.S3Config) *PhotoService {
	return &PhotoService{storage: storage}
}

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// SupportedPhotoType reports whether the content type is an image format
// the service accepts.
func SupportedPhotoType(contentType string) bool {
	_, ok := extByContentType[contentType]
	return ok
}

// UploadPetPhoto uploads photo bytes for the given pet and returns the
// public URL of the stored object.
func (s *PhotoService) UploadPetPhoto(ctx context.Context, petID uint, data []byte, contentType string) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported photo content type %q", contentType)
	}

	key := path.Join("pet-photos", fmt.Sprintf("%d-%s%s", petID, uuid.New().String(), ext))
	_, err := s.storage.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.storage.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.storage.BucketName, key), nil
}
