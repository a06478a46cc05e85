// Package storage holds the asset-store backends image uploads land in.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Buckets are namespaced per entity type.
const (
	BucketRestaurantImages = "restaurant-images"
	BucketMenuItemImages   = "menu-item-images"
)

// Store is a binary object store with path-based upload and public-URL
// resolution.
type Store interface {
	Upload(ctx context.Context, bucket, key, contentType string, data []byte) error
	PublicURL(bucket, key string) string
}

// NewKey builds a collision-resistant storage key from the upload time, a
// random suffix, and the original file extension.
func NewKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
