package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// RecordSchemaVersion is the current on-disk format of a CacheRecord.
// Records with any other version are treated as absent.
const RecordSchemaVersion = 1

// CacheRecord describes the last successful compilation for a handle.
type CacheRecord struct {
	SchemaVersion int       `json:"schema_version"`
	RootContext   string    `json:"root_context"`
	SourcePath    string    `json:"source_path,omitzero"`
	CompiledCSS   string    `json:"compiled_css,omitzero"`
	ArtifactHash  string    `json:"artifact_hash,omitzero"`
	RenderedHash  string    `json:"rendered_hash,omitzero"`
	UpdatedAt     time.Time `json:"updated_at,omitzero"`
}

// NewEmptyRecord returns the record used when nothing is cached for a handle yet.
func NewEmptyRecord(rootContext, sourcePath string) *CacheRecord {
	return &CacheRecord{
		SchemaVersion: RecordSchemaVersion,
		RootContext:   rootContext,
		SourcePath:    sourcePath,
	}
}

// IsEmpty reports whether the record carries no compiled output.
func (r *CacheRecord) IsEmpty() bool {
	return r == nil || r.CompiledCSS == ""
}

// MarkStale clears the compiled output so the next validity check rebuilds.
func (r *CacheRecord) MarkStale() {
	r.CompiledCSS = ""
	r.ArtifactHash = ""
	r.RenderedHash = ""
}

// HashCSS returns the content hash stored as ArtifactHash.
func HashCSS(css string) string {
	return HashText(css)
}

// HashText returns the 16 hex digit xxhash of s.
func HashText(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
