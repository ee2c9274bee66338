package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"service_documents/internal/config"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type objectWriterFunc func(ctx context.Context, bucket, key string) io.WriteCloser

type objectDeleterFunc func(ctx context.Context, bucket, key string) error

// GCSUploader stores PDFs in a Google Cloud Storage bucket under
// <prefix>/<serviceID>/ and returns their public URL.
type GCSUploader struct {
	client     *storage.Client
	newWriter  objectWriterFunc
	deleteObj  objectDeleterFunc
	bucket     string
	prefix     string
	publicBase string
	log        *logger.Logger
}

var _ interfaces.IFileUploader = (*GCSUploader)(nil)

func NewGCSUploader(ctx context.Context, cfg config.UploadsConfig, log *logger.Logger) (*GCSUploader, error) {
	log = log.With("component", "GCSUploader")
	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if cfg.GCSCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentials))
	} else {
		log.Warn("GCS_CREDENTIALS_FILE not set, relying on application default credentials")
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	u := &GCSUploader{
		client:     client,
		bucket:     cfg.GCSBucket,
		prefix:     strings.Trim(cfg.GCSObjectPrefix, "/"),
		publicBase: strings.TrimRight(cfg.GCSPublicBase, "/"),
		log:        log,
	}
	u.newWriter = func(ctx context.Context, bucket, key string) io.WriteCloser {
		w := client.Bucket(bucket).Object(key).NewWriter(ctx)
		w.ContentType = "application/pdf"
		return w
	}
	u.deleteObj = func(ctx context.Context, bucket, key string) error {
		return client.Bucket(bucket).Object(key).Delete(ctx)
	}
	return u, nil
}

func (u *GCSUploader) Upload(ctx context.Context, serviceID, filename string, content io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	key := u.objectKey(serviceID, filename)
	w := u.newWriter(ctx, u.bucket, key)
	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write gcs object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close gcs writer: %w", err)
	}

	u.log.Debug("stored upload", "service_id", serviceID, "bucket", u.bucket, "key", key)
	return fmt.Sprintf("%s/%s/%s", u.publicBase, u.bucket, key), nil
}

func (u *GCSUploader) Remove(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, u.publicBase+"/"+u.bucket+"/")
	if key == url || key == "" {
		return fmt.Errorf("%w: %s", ErrForeignUpload, url)
	}
	err := u.deleteObj(ctx, u.bucket, key)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("delete gcs object: %w", err)
	}
	u.log.Debug("removed upload", "bucket", u.bucket, "key", key)
	return nil
}

func (u *GCSUploader) objectKey(serviceID, filename string) string {
	key := serviceID + "/" + objectName(filename)
	if u.prefix != "" {
		key = u.prefix + "/" + key
	}
	return key
}

func (u *GCSUploader) Close() error {
	if u.client == nil {
		return nil
	}
	return u.client.Close()
}
