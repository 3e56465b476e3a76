package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylecache/internal/adapters/fs"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("a { b: c }"), 0o600))
	}
}

func TestWalker_Sources(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root,
		"main.scss",
		"theme/print.sass",
		"theme/dynamic.scss.tmpl",
		"theme/_variables.scss",
		"theme/plain.css",
		"README.md",
		".git/hooks/x.scss",
		".stylecache/cache/main.css.cache.preprocessed.scss",
		"node_modules/lib/lib.scss",
		"vendor/vendored.scss",
	)

	got := slices.Sorted(fs.NewWalker("vendor").Sources(root))
	assert.Equal(t, []string{
		"main.scss",
		"theme/dynamic.scss.tmpl",
		"theme/print.sass",
	}, got)
}

func TestWalker_SourcesStopsEarly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "a.scss", "b.scss", "c.scss")

	count := 0
	for range fs.NewWalker().Sources(root) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_MissingRoot(t *testing.T) {
	t.Parallel()

	got := slices.Collect(fs.NewWalker().Sources(filepath.Join(t.TempDir(), "missing")))
	assert.Empty(t, got)
}

func TestWalker_SourcesSkipsExcludedDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root,
		"theme.scss.tmpl",
		"public/css/themescsstmpl.css.cache.preprocessed.scss",
		"public/site.scss",
	)

	got := slices.Sorted(fs.NewWalker().Sources(root, filepath.Join(root, "public", "css")))
	assert.Equal(t, []string{"public/site.scss", "theme.scss.tmpl"}, got)
}

func TestWalker_SourcesExcludedRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root,
		"main.scss.tmpl",
		"mainscsstmpl.css.cache.preprocessed.scss",
		"nested/other.scss",
	)

	// The cache may live directly in the project root. Its snapshots are still left out.
	got := slices.Sorted(fs.NewWalker().Sources(root, root))
	assert.Equal(t, []string{"main.scss.tmpl", "nested/other.scss"}, got)
}
