package ledger

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage archives the uploaded source documents so a ledger row can always
// be traced back to the receipt it came from.
type Storage interface {
	// Save stores a file and returns its path within the archive.
	Save(filename string, data []byte) (string, error)

	// Get retrieves an archived file.
	Get(path string) ([]byte, error)

	// Delete removes an archived file.
	Delete(path string) error
}

// LocalStorage implements Storage on a local directory.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the archive directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save writes a file into the archive.
func (l *LocalStorage) Save(filename string, data []byte) (string, error) {
	if err := os.WriteFile(filepath.Join(l.basePath, filename), data, 0644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return filename, nil
}

// Get reads a file from the archive.
func (l *LocalStorage) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.basePath, path))
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// Delete removes a file from the archive.
func (l *LocalStorage) Delete(path string) error {
	if err := os.Remove(filepath.Join(l.basePath, path)); err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}
