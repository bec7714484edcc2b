package storage

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

//go:generate mockgen -source=files.go -destination=../mocks/storage_mock.go -package=mocks

// Upload is a file payload received from a client, not yet stored.
// Format and size constraints are enforced by callers before a store
// is invoked.
type Upload struct {
	Filename string
	Size     int64
	Data     []byte
}

// FileStore persists attachment payloads and returns logical reference
// paths. Paths returned by Save are relative to the store root and are
// what gets persisted on the owning records.
type FileStore interface {
	Save(ownerID, category string, upload Upload) (string, error)
	Delete(path string) error
	RemoveOwner(ownerID string) error
}

// DiskStore stores files under root/<ownerID>/<category>/, one directory
// per owning user.
type DiskStore struct {
	root string
}

// NewDiskStore creates a disk-backed file store rooted at dir
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{root: dir}
}

// Save writes the payload under a collision-resistant name and returns
// the reference path.
func (s *DiskStore) Save(ownerID, category string, upload Upload) (string, error) {
	unique := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), 10000+rand.Intn(90000), upload.Filename)
	dir := filepath.Join(s.root, ownerID, category)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, unique), upload.Data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return filepath.Join(ownerID, category, unique), nil
}

// Delete removes a stored file by its reference path
func (s *DiskStore) Delete(path string) error {
	return os.Remove(filepath.Join(s.root, path))
}

// RemoveOwner removes every file stored for an owner. Missing
// directories are not an error; the owner may never have uploaded.
func (s *DiskStore) RemoveOwner(ownerID string) error {
	dir := filepath.Join(s.root, ownerID)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return os.RemoveAll(dir)
}
