package storage

import (
	"context"
	"mime/multipart"
)

// FileStore persists uploaded files and returns a relative path usable as a
// public URL suffix.
type FileStore interface {
	StoreFile(ctx context.Context, file *multipart.FileHeader, folder string) (path string, err error)
}
