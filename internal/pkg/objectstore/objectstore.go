// Package objectstore abstracts the binary blob store behind the catalog.
// The catalog only ever sees opaque keys and publicly retrievable URLs; a
// resource row is written after, and only after, its blob is durably stored.
package objectstore

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"path"
	"time"
)

// Client defines the object store operations the ingestion pipeline needs.
type Client interface {
	// Store writes the blob under key and returns its publicly retrievable
	// URL. On failure nothing retrievable exists under key.
	Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)

	// Remove deletes the blob under key. Missing blobs are not an error.
	Remove(ctx context.Context, key string) error

	// PublicURL returns the retrievable URL for an already stored key.
	PublicURL(key string) string
}

const keyTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const keyTokenLength = 12

// GenerateKey builds a collision-resistant object key for an uploaded file:
// millisecond timestamp plus a random token, keeping the original extension.
// Concurrent uploads of same-named files therefore never collide.
func GenerateKey(filename string) (string, error) {
	token := make([]byte, keyTokenLength)
	max := big.NewInt(int64(len(keyTokenAlphabet)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate key token: %w", err)
		}
		token[i] = keyTokenAlphabet[n.Int64()]
	}

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, path.Ext(filename)), nil
}

// KeyFromURL recovers the object key from a public URL produced by a Client.
// Both backends place the key in the final path segment.
func KeyFromURL(fileURL string) string {
	key := path.Base(fileURL)
	if key == "." || key == "/" {
		return ""
	}
	return key
}
