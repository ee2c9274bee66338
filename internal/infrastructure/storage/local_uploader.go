package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"
)

var ErrForeignUpload = errors.New("url was not issued by this uploader")

// LocalUploader writes PDFs under Dir/<serviceID>/ and returns a URL below
// PublicPath, which the router serves as static files.
type LocalUploader struct {
	dir        string
	publicPath string
	log        *logger.Logger
}

var _ interfaces.IFileUploader = (*LocalUploader)(nil)

func NewLocalUploader(dir, publicPath string, log *logger.Logger) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir, publicPath: publicPath, log: log.With("component", "LocalUploader")}, nil
}

func (u *LocalUploader) Upload(ctx context.Context, serviceID, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	serviceDir := filepath.Join(u.dir, filepath.Base(serviceID))
	if err := os.MkdirAll(serviceDir, 0o755); err != nil {
		return "", fmt.Errorf("create service dir: %w", err)
	}

	name := objectName(filename)
	f, err := os.Create(filepath.Join(serviceDir, name))
	if err != nil {
		return "", err
	}
	n, err := io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}

	u.log.Debug("stored upload", "service_id", serviceID, "file", name, "bytes", n)
	return path.Join(u.publicPath, filepath.Base(serviceID), name), nil
}

func (u *LocalUploader) Remove(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel := strings.TrimPrefix(url, strings.TrimRight(u.publicPath, "/")+"/")
	if rel == url || rel != path.Clean(rel) || rel == ".." || strings.HasPrefix(rel, "../") {
		return fmt.Errorf("%w: %s", ErrForeignUpload, url)
	}
	if err := os.Remove(filepath.Join(u.dir, filepath.FromSlash(rel))); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	u.log.Debug("removed upload", "file", rel)
	return nil
}
