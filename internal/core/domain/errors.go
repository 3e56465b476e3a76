package domain

import "go.trai.ch/zerr"

var (
	// ErrNotApplicable is returned when a reference does not name a preprocessor source.
	// Callers treat it as a pass-through signal, not a failure.
	ErrNotApplicable = zerr.New("reference is not a preprocessor stylesheet")

	// ErrResolutionFailed is returned when a reference cannot be mapped to an existing source file.
	ErrResolutionFailed = zerr.New("failed to resolve stylesheet source")

	// ErrRenderFailed is returned when a templated source fails to render.
	ErrRenderFailed = zerr.New("failed to render templated stylesheet source")

	// ErrCompileFailed is returned when the preprocessor rejects a source.
	ErrCompileFailed = zerr.New("stylesheet compilation failed")

	// ErrPersistenceFailed is returned when a cache record or compiled artifact cannot be written.
	ErrPersistenceFailed = zerr.New("failed to persist compiled stylesheet")

	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache directory")

	// ErrStoreReadFailed is returned when a cache record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache record")

	// ErrStoreMarshalFailed is returned when a cache record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache record")

	// ErrStoreWriteFailed is returned when a cache file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache file")

	// ErrSnapshotReadFailed is returned when a rendered source snapshot cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read rendered source snapshot")

	// ErrSourceStatFailed is returned when the source modification time cannot be read.
	ErrSourceStatFailed = zerr.New("failed to stat stylesheet source")

	// ErrCompilerUnavailable is returned when the preprocessor binary cannot be started.
	ErrCompilerUnavailable = zerr.New("preprocessor is not available")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidStyle is returned when the configured output style is unknown.
	ErrInvalidStyle = zerr.New("invalid output style, expected nested, expanded, compact or compressed")

	// ErrInvalidMount is returned when a mount has an empty url or dir.
	ErrInvalidMount = zerr.New("invalid mount, url and dir are required")

	// ErrInvalidHandle is returned when a handle sanitizes to an empty string.
	ErrInvalidHandle = zerr.New("invalid handle")

	// ErrRecordNotFound is returned when no cache record exists for a handle.
	ErrRecordNotFound = zerr.New("cache record not found")

	// ErrNoReferences is returned when a command needs at least one stylesheet reference.
	ErrNoReferences = zerr.New("no stylesheet references specified")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch stylesheet sources")
)
