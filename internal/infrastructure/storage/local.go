package storage

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const maxUploadSize = 5 << 20 // 5MB

type LocalFileStore struct {
	baseDir string
}

func CreateLocalFileStore(baseDir string) *LocalFileStore {
	return &LocalFileStore{baseDir: baseDir}
}

func (s *LocalFileStore) StoreFile(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if file.Size > maxUploadSize {
		return "", errs.ErrFileSizeExceeded
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "StoreFile").Msg("")
		return "", errs.ErrInternalServer
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		log.Error().Err(err).Str("component", "StoreFile").Msg("")
		return "", errs.ErrInternalServer
	}

	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", errs.ErrNotAnImage
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		log.Error().Err(err).Str("component", "StoreFile").Msg("")
		return "", errs.ErrInternalServer
	}

	if err := os.MkdirAll(filepath.Join(s.baseDir, folder), 0o755); err != nil {
		log.Error().Err(err).Str("component", "StoreFile").Msg("")
		return "", errs.ErrInternalServer
	}

	name := ulid.Make().String() + strings.ToLower(filepath.Ext(file.Filename))
	relPath := filepath.Join(folder, name)

	dst, err := os.Create(filepath.Join(s.baseDir, relPath))
	if err != nil {
		log.Error().Err(err).Str("component", "StoreFile").Msg("")
		return "", errs.ErrInternalServer
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Error().Err(err).Str("component", "StoreFile").Msg("")
		return "", errs.ErrInternalServer
	}

	return filepath.ToSlash(relPath), nil
}
