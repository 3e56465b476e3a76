package domain

import (
	"path/filepath"
	"time"
)

// Output styles accepted by the preprocessor.
const (
	StyleNested     = "nested"
	StyleExpanded   = "expanded"
	StyleCompact    = "compact"
	StyleCompressed = "compressed"
)

const (
	// DefaultCompilerBinary is the preprocessor executable used when none is configured.
	DefaultCompilerBinary = "sassc"

	// DefaultDebounce is the quiet period before watch mode recompiles.
	DefaultDebounce = 50 * time.Millisecond
)

// Mount maps a public URL prefix onto a local directory.
type Mount struct {
	URL string
	Dir string
}

// Config is the resolved project configuration. All paths are absolute.
type Config struct {
	// Root is the base directory for plain-path references.
	Root string

	CacheDir string
	CacheURL string

	Mounts []Mount

	CompilerBinary   string
	Style            string
	CompilerIdentity string
	CompilerTimeout  time.Duration

	Minify           bool
	QualifiedHandles bool

	TemplateVars map[string]string

	Debounce time.Duration
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:           root,
		CacheDir:       filepath.Join(root, DefaultCachePath()),
		CacheURL:       DefaultCacheURL,
		CompilerBinary: DefaultCompilerBinary,
		Style:          StyleNested,
		TemplateVars:   map[string]string{},
		Debounce:       DefaultDebounce,
	}
}

// ValidStyle reports whether s is a known output style.
func ValidStyle(s string) bool {
	switch s {
	case StyleNested, StyleExpanded, StyleCompact, StyleCompressed:
		return true
	}
	return false
}
