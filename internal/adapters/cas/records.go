// Package cas implements the on-disk stylesheet cache: metadata records, compiled
// artifacts and rendered source snapshots, all keyed by handle.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru"
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultRecordCacheSize is the number of decoded records kept in memory.
const DefaultRecordCacheSize = 256

// cachedRecord is a decoded record together with the file it was read from.
type cachedRecord struct {
	record domain.CacheRecord
	info   os.FileInfo
}

// current reports whether info still describes the file c was decoded from. Records are
// replaced by rename, so every rewrite produces a different file even when its size and
// modification time match the old one.
func (c cachedRecord) current(info os.FileInfo) bool {
	return os.SameFile(c.info, info) &&
		c.info.ModTime().Equal(info.ModTime()) &&
		c.info.Size() == info.Size()
}

// RecordStore implements ports.RecordStore using one JSON file per handle.
// Decoded records are memoized and revalidated against the file's identity, mtime and size.
type RecordStore struct {
	dir   string
	cache *lru.Cache
}

// NewRecordStore creates a RecordStore rooted at dir.
func NewRecordStore(dir string) (*RecordStore, error) {
	cache, err := lru.New(DefaultRecordCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create record cache")
	}
	return &RecordStore{dir: filepath.Clean(dir), cache: cache}, nil
}

// Get retrieves the record for a handle. Missing, corrupt and foreign-version records
// all read as nil so the caller rebuilds.
func (s *RecordStore) Get(handle domain.Handle) (*domain.CacheRecord, error) {
	path := s.path(handle)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.cache.Remove(handle)
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if v, ok := s.cache.Get(handle); ok {
		c, _ := v.(cachedRecord)
		if c.info != nil && c.current(info) {
			rec := c.record
			return &rec, nil
		}
	}

	//nolint:gosec // Path is built from the cache directory and a sanitized handle
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	var rec domain.CacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil
	}
	if rec.SchemaVersion != domain.RecordSchemaVersion {
		return nil, nil
	}

	s.cache.Add(handle, cachedRecord{record: rec, info: info})
	return &rec, nil
}

// Put atomically replaces the record for a handle.
func (s *RecordStore) Put(handle domain.Handle, record *domain.CacheRecord) error {
	rec := *record
	rec.SchemaVersion = domain.RecordSchemaVersion

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	s.cache.Remove(handle)
	return writeFileAtomic(s.path(handle), data)
}

// Remove deletes the record for a handle. A missing record is not an error.
func (s *RecordStore) Remove(handle domain.Handle) error {
	s.cache.Remove(handle)
	if err := os.Remove(s.path(handle)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *RecordStore) path(handle domain.Handle) string {
	return filepath.Join(s.dir, domain.RecordName(handle))
}
