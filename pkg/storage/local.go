package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore persists operator profile images and hands back the public path
// stored on the operator record.
type ImageStore interface {
	Save(originalName string, data []byte) (string, error)
	Remove(publicPath string) error
}

type localImageStore struct {
	dir          string // filesystem directory, e.g. public/uploads
	publicPrefix string // URL prefix, e.g. /uploads
}

func NewLocalImageStore(dir, publicPrefix string) ImageStore {
	return &localImageStore{dir: dir, publicPrefix: strings.TrimSuffix(publicPrefix, "/")}
}

// Save writes the blob under a fresh UUID filename, keeping only the original
// extension.
func (s *localImageStore) Save(originalName string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	fileName := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	if err := os.WriteFile(filepath.Join(s.dir, fileName), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return s.publicPrefix + "/" + fileName, nil
}

// Remove deletes the blob behind a public path. Paths outside the store's
// prefix and already-missing files are ignored.
func (s *localImageStore) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, s.publicPrefix+"/") {
		return nil
	}
	fileName := filepath.Base(publicPath)
	if err := os.Remove(filepath.Join(s.dir, fileName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
