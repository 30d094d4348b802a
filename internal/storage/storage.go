// Package storage persists generated artifacts. Keys are file names
// relative to the configured output directory.
package storage

import "context"

// System defines artifact storage operations.
type System interface {
	// Store saves data at the specified key, replacing any existing content.
	// Parent directories are created as needed.
	// Returns ErrInvalidKey if the key is empty or contains path traversal.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at the specified key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Path returns the absolute file path backing key.
	Path(key string) (string, error)
}
