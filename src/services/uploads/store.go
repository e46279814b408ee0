// Package uploads stores answer attachments on local disk.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"Backend-FormCraft/src/logger"
)

var (
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds the upload limit")
)

// Upload is what the client stores as the answer of a file field.
type Upload struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// BlobStore returns a stable URL for an uploaded file.
type BlobStore interface {
	Save(ctx context.Context, fh *multipart.FileHeader) (*Upload, error)
}

// DiskStore writes files under Dir with a uuid name and serves them below
// BaseURL + "/uploads".
type DiskStore struct {
	Dir      string
	BaseURL  string
	MaxBytes int64
}

func NewDiskStore(dir, baseURL string, maxMB int) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{
		Dir:      dir,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		MaxBytes: int64(maxMB) << 20,
	}, nil
}

func (s *DiskStore) Save(ctx context.Context, fh *multipart.FileHeader) (*Upload, error) {
	if fh == nil || fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return nil, ErrFileTooLarge
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	if err := saveFile(fh, filepath.Join(s.Dir, name)); err != nil {
		logger.Errorf("❌ [uploads] save %s: %v", fh.Filename, err)
		return nil, err
	}
	return &Upload{
		URL:      s.BaseURL + "/uploads/" + name,
		Filename: name,
		Size:     fh.Size,
	}, nil
}

func saveFile(fh *multipart.FileHeader, path string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(path)
		return err
	}
	return dst.Close()
}
