package storage

import (
	"context"
	"io"
)

// ImageStorage ذخیره فایل تصویر پست‌ها
type ImageStorage interface {
	// Save stores body under a path derived from filename and returns that path.
	Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	// URL maps a stored path to the address clients fetch it from.
	URL(path string) string
}
