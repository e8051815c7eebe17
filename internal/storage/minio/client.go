package minio

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kiema2001/prof-mbinda-backend/internal/config"
)

// Prefixes stored on entities; each maps to its own bucket. The public
// file routes use the same prefixes, so a stored path doubles as the
// download URL.
const (
	UploadPrefix   = "/uploads/"
	DocumentPrefix = "/documents/"
)

// Storage holds uploaded photos and documents in object storage.
type Storage struct {
	client         *minio.Client
	uploadBucket   string
	documentBucket string
}

// New connects to the object store and ensures both buckets exist.
func New(ctx context.Context, cfg config.Storage) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	s := &Storage{
		client:         client,
		uploadBucket:   cfg.UploadBucket,
		documentBucket: cfg.DocumentBucket,
	}

	for _, bucket := range []string{cfg.UploadBucket, cfg.DocumentBucket} {
		if err := s.ensureBucket(ctx, bucket); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Storage) ensureBucket(ctx context.Context, name string) error {
	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", name, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, name, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", name, err)
	}
	return nil
}

// SaveUpload stores a photo and returns its stored path.
func (s *Storage) SaveUpload(
	ctx context.Context,
	objectName string,
	r io.Reader,
	size int64,
	contentType string,
) (string, error) {
	return s.save(ctx, s.uploadBucket, UploadPrefix, objectName, r, size, contentType)
}

// SaveDocument stores a document and returns its stored path.
func (s *Storage) SaveDocument(
	ctx context.Context,
	objectName string,
	r io.Reader,
	size int64,
	contentType string,
) (string, error) {
	return s.save(ctx, s.documentBucket, DocumentPrefix, objectName, r, size, contentType)
}

func (s *Storage) save(
	ctx context.Context,
	bucket string,
	prefix string,
	objectName string,
	r io.Reader,
	size int64,
	contentType string,
) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store object %q: %w", objectName, err)
	}
	return prefix + objectName, nil
}

// Open streams a stored file back by its stored path.
func (s *Storage) Open(ctx context.Context, storedPath string) (io.ReadCloser, error) {
	bucket, objectName, err := s.resolve(storedPath)
	if err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open object %q: %w", objectName, err)
	}
	return obj, nil
}

// Remove deletes a stored file. Best-effort cleanup for entity deletes;
// an unknown path is not an error.
func (s *Storage) Remove(ctx context.Context, storedPath string) error {
	bucket, objectName, err := s.resolve(storedPath)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %q: %w", objectName, err)
	}
	return nil
}

func (s *Storage) resolve(storedPath string) (bucket, objectName string, err error) {
	switch {
	case strings.HasPrefix(storedPath, UploadPrefix):
		return s.uploadBucket, strings.TrimPrefix(storedPath, UploadPrefix), nil
	case strings.HasPrefix(storedPath, DocumentPrefix):
		return s.documentBucket, strings.TrimPrefix(storedPath, DocumentPrefix), nil
	default:
		return "", "", fmt.Errorf("unrecognized stored path %q", storedPath)
	}
}

// allowedExtensions mirrors what the admin pages can render or link:
// images plus common document formats.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// AllowedFile reports whether a filename's extension is accepted for
// upload.
func AllowedFile(name string) bool {
	return allowedExtensions[strings.ToLower(path.Ext(name))]
}
