package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// documentExts are the file extensions List reports as documents.
var documentExts = map[string]bool{
	".yaml":  true,
	".yml":   true,
	".json":  true,
	".jsonc": true,
}

// DiskStore serves documents from a local directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a store rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Load implements Store. Keys are paths relative to the store root; keys
// that escape the root are rejected.
func (s *DiskStore) Load(_ context.Context, key string) ([]byte, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return data, err
}

// List implements Store, returning document keys in sorted order.
func (s *DiskStore) List(_ context.Context) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !documentExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// resolve joins key onto the root and rejects traversal outside it.
func (s *DiskStore) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("docstore: key %q escapes the store root", key)
	}
	return filepath.Join(s.dir, cleaned), nil
}
