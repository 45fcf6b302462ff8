package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngContent is a PNG signature followed by filler bytes, enough for the
// content sniffer to classify it as image/png.
var pngContent = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, bytes.Repeat([]byte{0x00}, 64)...)

func createFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("proof", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	require.Len(t, form.File["proof"], 1)
	return form.File["proof"][0]
}

func TestStoreFileWritesImage(t *testing.T) {
	baseDir := t.TempDir()
	store := CreateLocalFileStore(baseDir)

	file := createFileHeader(t, "proof.png", pngContent)

	path, err := store.StoreFile(context.Background(), file, "proofs")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "proofs/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	written, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.Equal(t, pngContent, written)
}

func TestStoreFileRejectsNonImage(t *testing.T) {
	store := CreateLocalFileStore(t.TempDir())

	file := createFileHeader(t, "proof.png", []byte("transfer receipt no. 123, plain text"))

	_, err := store.StoreFile(context.Background(), file, "proofs")
	assert.ErrorIs(t, err, errs.ErrNotAnImage)
}

func TestStoreFileRejectsOversizeUpload(t *testing.T) {
	baseDir := t.TempDir()
	store := CreateLocalFileStore(baseDir)

	// the size cap is checked before the file is opened
	file := &multipart.FileHeader{Filename: "proof.png", Size: maxUploadSize + 1}

	_, err := store.StoreFile(context.Background(), file, "proofs")
	assert.ErrorIs(t, err, errs.ErrFileSizeExceeded)

	entries, err := os.ReadDir(baseDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
