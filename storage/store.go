package storage

import (
	"context"
	"strings"
)

// ObjectStore is the narrow surface the services need from blob storage.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
	PublicURL(bucket, key string) string
	Remove(ctx context.Context, bucket string, keys []string) error
}

// IsAbsoluteURL reports whether a stored reference is an externally hosted
// URL rather than an object key.
func IsAbsoluteURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// ResolveURL turns a stored image reference into a displayable URL. An
// absolute URL passes through unchanged, so resolving twice is a no-op; an
// object key is minted into a public URL for the bucket. Empty in, empty out.
func ResolveURL(store ObjectStore, bucket, ref string) string {
	if ref == "" {
		return ""
	}
	if IsAbsoluteURL(ref) {
		return ref
	}
	return store.PublicURL(bucket, ref)
}
