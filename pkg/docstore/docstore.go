// Package docstore abstracts where source-tree documents live. The preview
// server and CLI load documents through a Store so the same code serves
// local files during development and object storage in shared setups.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound means the store has no document under the requested key.
var ErrNotFound = errors.New("docstore: document not found")

// Store provides read access to source-tree documents.
type Store interface {
	// Load returns the raw bytes of the document stored under key.
	Load(ctx context.Context, key string) ([]byte, error)

	// List enumerates the document keys the store knows about.
	List(ctx context.Context) ([]string, error)
}
