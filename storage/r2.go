package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/danielbonkowsky/sharayunet/config"
)

// MediaStore is the external media host. Upload returns the public URL
// and an opaque id; Destroy must be given the media type persisted at
// upload because objects are partitioned by type.
type MediaStore interface {
	Upload(ctx context.Context, data []byte, filename, contentType, mediaType string) (url string, publicID string, err error)
	Destroy(ctx context.Context, publicID, mediaType string) error
}

type R2Store struct {
	Client *s3.Client
	Config *config.R2Config
}

func NewR2Store(cfg *config.R2Config) *R2Store {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &R2Store{
		Client: client,
		Config: cfg,
	}
}

func (rs *R2Store) Upload(ctx context.Context, data []byte, filename, contentType, mediaType string) (string, string, error) {
	publicID := generatePublicID(filename)
	key := objectKey(publicID, mediaType)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(rs.Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	if _, err := rs.Client.PutObject(ctx, input); err != nil {
		return "", "", err
	}

	return fmt.Sprintf("%s/%s", rs.Config.PublicURL, key), publicID, nil
}

func (rs *R2Store) Destroy(ctx context.Context, publicID, mediaType string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(rs.Config.BucketName),
		Key:    aws.String(objectKey(publicID, mediaType)),
	}

	_, err := rs.Client.DeleteObject(ctx, input)
	return err
}

func generatePublicID(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
}

// objectKey prefixes the id with the media type, so the same id under
// the wrong type resolves to a nonexistent object.
func objectKey(publicID, mediaType string) string {
	return fmt.Sprintf("uploads/%s/%s", mediaType, publicID)
}
