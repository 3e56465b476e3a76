package cas

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/zerr"
)

// ArtifactStore implements ports.ArtifactStore. Compiled CSS lives in dir and is served
// under baseURL.
type ArtifactStore struct {
	dir     string
	baseURL string
}

// NewArtifactStore creates an ArtifactStore rooted at dir.
func NewArtifactStore(dir, baseURL string) *ArtifactStore {
	return &ArtifactStore{
		dir:     filepath.Clean(dir),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Write atomically replaces the compiled artifact for a handle.
func (s *ArtifactStore) Write(handle domain.Handle, css string) error {
	return writeFileAtomic(s.Path(handle), []byte(css))
}

// Hash returns the xxhash of the artifact on disk, or "" when it does not exist.
func (s *ArtifactStore) Hash(handle domain.Handle) (string, error) {
	path := s.Path(handle)
	//nolint:gosec // Path is built from the cache directory and a sanitized handle
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// URL returns the public URL of the artifact, with query appended when non-empty.
func (s *ArtifactStore) URL(handle domain.Handle, query string) string {
	u := s.baseURL + "/" + domain.ArtifactName(handle)
	if query != "" {
		u += "?" + query
	}
	return u
}

// Path returns the filesystem path of the artifact for a handle.
func (s *ArtifactStore) Path(handle domain.Handle) string {
	return filepath.Join(s.dir, domain.ArtifactName(handle))
}
