// Package uploads stages and commits catalog images. Staging is purely
// local: nothing reaches the asset store until Commit, so cancelling a form
// before submission leaves no orphaned object behind.
package uploads

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/basiljilani/Foodo-admin/storage"
)

// MaxImageSize caps uploads at 5 MiB.
const MaxImageSize = 5 << 20

var (
	ErrFileTooLarge    = errors.New("image size should be less than 5MB")
	ErrInvalidFileType = errors.New("file is not an image")
)

// UploadError wraps a store fault during commit. No retry happens here;
// the caller decides.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("image upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Preview is a staged, uncommitted image. DataURL renders it locally
// before anything is persisted.
type Preview struct {
	Name        string
	ContentType string
	Data        []byte
	DataURL     string
}

type Uploader struct {
	store  storage.Store
	bucket string
}

func NewUploader(store storage.Store, bucket string) *Uploader {
	return &Uploader{store: store, bucket: bucket}
}

// Stage validates the file and builds a local preview. It never touches
// the store.
func (u *Uploader) Stage(name, contentType string, data []byte) (*Preview, error) {
	if len(data) > MaxImageSize {
		return nil, ErrFileTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrInvalidFileType
	}
	return &Preview{
		Name:        name,
		ContentType: contentType,
		Data:        data,
		DataURL:     fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
	}, nil
}

// StageDataURL stages an image sent as a data:<type>;base64,<payload> URL,
// the format browser clients produce from a local file read.
func (u *Uploader) StageDataURL(name, dataURL string) (*Preview, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, ErrInvalidFileType
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrInvalidFileType
	}
	contentType := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidFileType
	}
	return u.Stage(name, contentType, data)
}

// Commit uploads the staged image under a fresh storage key and returns
// the durable public URL.
func (u *Uploader) Commit(ctx context.Context, p *Preview) (string, error) {
	key := storage.NewKey(p.Name)
	if err := u.store.Upload(ctx, u.bucket, key, p.ContentType, p.Data); err != nil {
		return "", &UploadError{Err: err}
	}
	return u.store.PublicURL(u.bucket, key), nil
}
