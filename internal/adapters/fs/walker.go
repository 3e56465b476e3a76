// Package fs discovers stylesheet sources on disk.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
)

var _ ports.SourceFinder = (*Walker)(nil)

// skippedDirectories are never descended into.
var skippedDirectories = []string{".git", ".jj", "node_modules", domain.StateDirName}

// Walker implements ports.SourceFinder by walking the directory tree.
type Walker struct {
	ignores []string
}

// NewWalker creates a Walker. Entries whose base name matches one of the ignore
// patterns (filepath.Match syntax) are skipped.
func NewWalker(ignores ...string) *Walker {
	return &Walker{ignores: ignores}
}

// Sources yields every compilable stylesheet under root as a slash separated path
// relative to root. Partials (names starting with "_") are imported by other sources and
// never compiled on their own, so they are skipped. Nothing inside an excluded directory
// is yielded; callers pass the cache directory so snapshots are not mistaken for sources.
func (w *Walker) Sources(root string, exclude ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		base := absolute(root)
		excluded := excludedSet(exclude)

		_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, the rest of the tree is still walked.
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() && path != base && excluded[path] {
				return filepath.SkipDir
			}
			if w.skip(d) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() || !d.Type().IsRegular() || domain.IsSnapshotName(d.Name()) {
				return nil
			}
			if _, _, ok := domain.MatchSource(d.Name()); !ok {
				return nil
			}

			rel, relErr := filepath.Rel(base, path)
			if relErr != nil {
				return nil
			}
			if !yield(filepath.ToSlash(rel)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) skip(d fs.DirEntry) bool {
	name := d.Name()

	if d.IsDir() && slices.Contains(skippedDirectories, name) {
		return true
	}
	if !d.IsDir() && strings.HasPrefix(name, "_") {
		return true
	}

	for _, ignore := range w.ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}

func excludedSet(dirs []string) map[string]bool {
	set := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		if dir != "" {
			set[absolute(dir)] = true
		}
	}
	return set
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
