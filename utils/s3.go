package utils

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	s3Client  *s3.Client
	s3Presign *s3.PresignClient
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	s3Presign = s3.NewPresignClient(s3Client)
}

// AllowedImageType reports whether contentType is an accepted profile
// picture format.
func AllowedImageType(contentType string) bool {
	_, ok := allowedImageTypes[strings.ToLower(contentType)]
	return ok
}

// UploadProfilePicture stores the image bytes and returns the S3 key.
// The bucket is private, so callers hand out presigned view URLs instead of
// the key itself.
func UploadProfilePicture(data []byte, contentType string, userID uint) (string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	key := fmt.Sprintf("profile-pictures/%d-%d%s", userID, time.Now().UnixNano(), ext)

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return key, nil
}

// PresignViewURL returns a temporary GET URL for a stored object key.
// Legacy rows store full URLs; those pass through unchanged.
func PresignViewURL(keyOrURL string) (string, error) {
	if keyOrURL == "" || strings.HasPrefix(keyOrURL, "http") {
		return keyOrURL, nil
	}

	req, err := s3Presign.PresignGetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(os.Getenv("S3_BUCKET")),
		Key:    aws.String(keyOrURL),
	}, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to presign view URL: %w", err)
	}
	return req.URL, nil
}

// PresignUploadURL returns a temporary PUT URL so clients can upload a
// profile picture directly.
func PresignUploadURL(fileName, contentType string) (string, error) {
	if !AllowedImageType(contentType) {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	key := fmt.Sprintf("profile-pictures/%d-%s", time.Now().UnixNano(), filepath.Base(fileName))

	req, err := s3Presign.PresignPutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(10*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload URL: %w", err)
	}
	return req.URL, nil
}

// DeleteProfilePicture removes a stored object. Only profile-picture keys may
// be deleted; anything else (including legacy URLs) is left alone.
func DeleteProfilePicture(key string) {
	if key == "" || !strings.HasPrefix(key, "profile-pictures/") {
		return
	}

	_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(os.Getenv("S3_BUCKET")),
		Key:    aws.String(key),
	})
	if err != nil {
		// the object may already be gone
		log.Printf("Failed to delete %s from S3: %v", key, err)
	}
}
