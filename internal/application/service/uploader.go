package service

import (
	"context"
	"io"
)

// Uploader archives original uploads in external media storage.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
