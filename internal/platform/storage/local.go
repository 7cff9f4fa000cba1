// Package storage implements the per-user image file store on the local
// filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// localStore keeps each user's images under <root>/<userID>/.
type localStore struct {
	root string
}

// NewLocalStore creates a new localStore rooted at the given directory.
func NewLocalStore(root string) *localStore {
	return &localStore{root: root}
}

// ownerDir returns the directory holding the given user's images.
func (s *localStore) ownerDir(ownerID uint) string {
	return filepath.Join(s.root, strconv.FormatUint(uint64(ownerID), 10))
}

// Save writes the image into the owner's directory, creating it on first use,
// and returns the stored filename. The name gets a millisecond-timestamp
// prefix; two uploads of the same file in the same millisecond overwrite each
// other, which is acceptable (last write wins).
func (s *localStore) Save(ownerID uint, originalName string, r io.Reader) (string, error) {
	dir := s.ownerDir(ownerID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := TimestampedName(originalName)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return name, nil
}

// Remove deletes the named image from the owner's directory.
func (s *localStore) Remove(ownerID uint, filename string) error {
	// Base strips any path components from the client-supplied name.
	return os.Remove(filepath.Join(s.ownerDir(ownerID), filepath.Base(filename)))
}

// TimestampedName builds a stored filename from an upload's original name.
// The millisecond prefix disambiguates repeated uploads of the same file.
func TimestampedName(originalName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
}
