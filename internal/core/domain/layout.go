package domain

import (
	"path/filepath"
	"strings"
)

const (
	// StateDirName is the name of the internal workspace directory.
	StateDirName = ".stylecache"

	// CacheDirName is the name of the compiled artifact directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "stylecache.yaml"

	// ConfigEnvVar overrides config discovery with an explicit path.
	ConfigEnvVar = "STYLECACHE_CONFIG"

	// DefaultCacheURL is the public base URL for compiled artifacts.
	DefaultCacheURL = "/stylecache"

	// ArtifactExt is appended to a handle to name the compiled artifact.
	ArtifactExt = ".css"

	// RecordExt is appended to the artifact name to name its cache record.
	RecordExt = ".cache"

	// SnapshotInfix sits between the record name and the syntax in a snapshot name.
	SnapshotInfix = ".preprocessed."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default directory for compiled artifacts.
// It joins .stylecache and cache.
func DefaultCachePath() string {
	return filepath.Join(StateDirName, CacheDirName)
}

// ArtifactName returns the file name of the compiled artifact for a handle.
func ArtifactName(h Handle) string {
	return string(h) + ArtifactExt
}

// RecordName returns the file name of the cache record for a handle.
func RecordName(h Handle) string {
	return ArtifactName(h) + RecordExt
}

// SnapshotName returns the file name of the rendered source snapshot for a handle and syntax.
func SnapshotName(h Handle, syntax Syntax) string {
	return RecordName(h) + SnapshotInfix + string(syntax)
}

// IsSnapshotName reports whether name is the file name of a rendered source snapshot.
// Snapshots end in a preprocessor extension but are never sources themselves.
func IsSnapshotName(name string) bool {
	return strings.Contains(name, ArtifactExt+RecordExt+SnapshotInfix)
}
