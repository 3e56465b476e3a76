package ports

import "go.trai.ch/stylecache/internal/core/domain"

// RecordStore persists one CacheRecord per handle.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record for a handle.
	// Returns nil, nil if no usable record exists.
	Get(handle domain.Handle) (*domain.CacheRecord, error)

	// Put atomically replaces the record for a handle.
	Put(handle domain.Handle, record *domain.CacheRecord) error
}

// ArtifactStore holds the compiled CSS files and knows their public URLs.
type ArtifactStore interface {
	// Write atomically replaces the compiled artifact for a handle.
	Write(handle domain.Handle, css string) error

	// Hash returns the content hash of the artifact on disk.
	// Returns "", nil if the artifact does not exist.
	Hash(handle domain.Handle) (string, error)

	// URL returns the public URL of the artifact, with query appended when non-empty.
	URL(handle domain.Handle, query string) string
}

// SnapshotStore keeps the last rendered text of templated sources.
type SnapshotStore interface {
	// Reconcile compares text with the stored snapshot for handle and syntax. When the
	// snapshot is absent or differs it is overwritten and changed is true. The returned
	// path names the snapshot file either way.
	Reconcile(handle domain.Handle, syntax domain.Syntax, text string) (changed bool, path string, err error)
}
