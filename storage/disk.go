package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore writes objects under root/<bucket>/<key> and resolves them to
// URLs served from the /uploads static route.
type DiskStore struct {
	Root    string
	BaseURL string
}

func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Upload(_ context.Context, bucket, key, _ string, data []byte) error {
	dir := filepath.Join(s.Root, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("disk upload %s/%s: %w", bucket, key, err)
	}
	if err := os.WriteFile(filepath.Join(dir, key), data, 0644); err != nil {
		return fmt.Errorf("disk upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *DiskStore) PublicURL(bucket, key string) string {
	return s.BaseURL + "/uploads/" + bucket + "/" + key
}
