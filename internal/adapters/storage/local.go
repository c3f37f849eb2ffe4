package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"yatube/internal/config"

	"github.com/gofrs/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LocalStorage ذخیره تصاویر روی فایل‌سیستم (MEDIA_ROOT)
type LocalStorage struct {
	fs      afero.Fs
	baseURL string
}

// NewLocalStorage roots fs at root; tests pass afero.NewMemMapFs().
func NewLocalStorage(fs afero.Fs, root, baseURL string) *LocalStorage {
	return &LocalStorage{
		fs:      afero.NewBasePathFs(fs, root),
		baseURL: baseURL,
	}
}

func (s *LocalStorage) Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key, err := s.availablePath(ObjectPath(filename))
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(Folder, 0o755); err != nil {
		return "", fmt.Errorf("creating media folder: %w", err)
	}
	f, err := s.fs.Create(key)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", key, err)
	}
	defer f.Close()

	n, err := io.Copy(f, body)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", key, err)
	}
	config.Logger.Info("Stored image", zap.String("path", key), zap.String("contentType", contentType), zap.Int64("bytes", n))
	return key, nil
}

// availablePath keeps an existing file by suffixing the new one.
func (s *LocalStorage) availablePath(key string) (string, error) {
	exists, err := afero.Exists(s.fs, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return key, nil
	}
	ext := path.Ext(key)
	stem := strings.TrimSuffix(key, ext)
	suffix := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:7]
	return stem + "_" + suffix + ext, nil
}

func (s *LocalStorage) URL(p string) string {
	if p == "" {
		return ""
	}
	return strings.TrimSuffix(s.baseURL, "/") + "/" + p
}
