package cas

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/zerr"
)

// SnapshotStore implements ports.SnapshotStore. It keeps the last rendered text of each
// templated source next to its record.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore creates a SnapshotStore rooted at dir.
func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: filepath.Clean(dir)}
}

// Reconcile overwrites the snapshot when it is absent or differs from text.
func (s *SnapshotStore) Reconcile(
	handle domain.Handle,
	syntax domain.Syntax,
	text string,
) (changed bool, path string, err error) {
	path = filepath.Join(s.dir, domain.SnapshotName(handle, syntax))

	//nolint:gosec // Path is built from the cache directory and a sanitized handle
	current, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(current, []byte(text)) {
			return false, path, nil
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return false, path, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", path)
	}

	if err := writeFileAtomic(path, []byte(text)); err != nil {
		return false, path, err
	}
	return true, path, nil
}
