// Package storage persists uploaded contract documents on the local
// filesystem. Stored names combine a timestamp with a random component
// so they never collide; path elements from the client name are stripped.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kthaib/aqari-api/internal/application/contract"
	"github.com/kthaib/aqari-api/internal/domain"
)

var _ contract.DocumentStore = (*LocalStore)(nil)

// LocalStore keeps documents under one directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the upload and returns the stored name. The name carries
// a random component so repeated uploads of the same file never collide.
func (s *LocalStore) Save(name string, r io.Reader) (string, error) {
	base := sanitize(name)
	if base == "" {
		return "", domain.ErrInvalidInput
	}
	stored := time.Now().Format("20060102_150405") + "_" + uuid.New().String()[:8] + "_" + base
	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write document: %w", err)
	}
	return stored, nil
}

// Open streams a stored document.
func (s *LocalStore) Open(stored string) (io.ReadCloser, error) {
	clean := sanitize(stored)
	if clean == "" {
		return nil, domain.ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.dir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("open document: %w", err)
	}
	return f, nil
}

// Delete removes a stored document. Missing files are not an error.
func (s *LocalStore) Delete(stored string) error {
	clean := sanitize(stored)
	if clean == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, clean))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// sanitize keeps only the base name so a crafted name can never escape
// the upload directory.
func sanitize(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == ".." || base == "/" {
		return ""
	}
	return base
}
