package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"service_documents/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	name := objectName("../../etc/cotización final.pdf")
	assert.True(t, strings.HasSuffix(name, "-cotizaci_n_final.pdf"), name)
	assert.NotContains(t, name, "/")

	assert.True(t, strings.HasSuffix(objectName(""), "-document.pdf"))
	assert.NotEqual(t, objectName("a.pdf"), objectName("a.pdf"))
}

func TestLocalUploader_Upload(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir, "/uploads", logger.NewNop())
	require.NoError(t, err)

	url, err := u.Upload(context.Background(), "42", "quote.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/42/"), url)
	assert.True(t, strings.HasSuffix(url, "-quote.pdf"), url)

	data, err := os.ReadFile(filepath.Join(dir, "42", filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestLocalUploader_CancelledContext(t *testing.T) {
	u, err := NewLocalUploader(t.TempDir(), "/uploads", logger.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = u.Upload(ctx, "42", "quote.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

type bufferWriter struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (w *bufferWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestGCSUploader_Upload(t *testing.T) {
	w := &bufferWriter{}
	var gotBucket, gotKey string
	u := &GCSUploader{
		bucket:     "docs",
		prefix:     "services",
		publicBase: "https://storage.googleapis.com",
		log:        logger.NewNop(),
		newWriter: func(_ context.Context, bucket, key string) io.WriteCloser {
			gotBucket, gotKey = bucket, key
			return w
		},
	}

	url, err := u.Upload(context.Background(), "42", "order.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "docs", gotBucket)
	assert.True(t, strings.HasPrefix(gotKey, "services/42/"), gotKey)
	assert.Equal(t, "https://storage.googleapis.com/docs/"+gotKey, url)
	assert.Equal(t, "pdf-bytes", w.String())
	assert.True(t, w.closed)
}

func TestGCSUploader_CloseError(t *testing.T) {
	u := &GCSUploader{
		bucket: "docs",
		log:    logger.NewNop(),
		newWriter: func(context.Context, string, string) io.WriteCloser {
			return &bufferWriter{closeErr: errors.New("quota")}
		},
	}
	_, err := u.Upload(context.Background(), "42", "order.pdf", strings.NewReader("x"))
	assert.ErrorContains(t, err, "quota")
	assert.Nil(t, u.Close())
}

func TestLocalUploader_Remove(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir, "/uploads", logger.NewNop())
	require.NoError(t, err)

	url, err := u.Upload(context.Background(), "42", "quote.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)

	require.NoError(t, u.Remove(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, "42", filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, u.Remove(context.Background(), url), "removing twice is not an error")
	assert.ErrorIs(t, u.Remove(context.Background(), "https://elsewhere/x.pdf"), ErrForeignUpload)
	assert.ErrorIs(t, u.Remove(context.Background(), "/uploads/../secret.pdf"), ErrForeignUpload)
}

func TestGCSUploader_Remove(t *testing.T) {
	var gotBucket, gotKey string
	u := &GCSUploader{
		bucket:     "docs",
		publicBase: "https://storage.googleapis.com",
		log:        logger.NewNop(),
		deleteObj: func(_ context.Context, bucket, key string) error {
			gotBucket, gotKey = bucket, key
			return nil
		},
	}

	require.NoError(t, u.Remove(context.Background(), "https://storage.googleapis.com/docs/services/42/a-order.pdf"))
	assert.Equal(t, "docs", gotBucket)
	assert.Equal(t, "services/42/a-order.pdf", gotKey)

	assert.ErrorIs(t, u.Remove(context.Background(), "/uploads/42/a.pdf"), ErrForeignUpload)

	u.deleteObj = func(context.Context, string, string) error { return errors.New("forbidden") }
	assert.ErrorContains(t, u.Remove(context.Background(), "https://storage.googleapis.com/docs/k.pdf"), "forbidden")
}
