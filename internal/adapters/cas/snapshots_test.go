package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylecache/internal/adapters/cas"
	"go.trai.ch/stylecache/internal/core/domain"
)

func TestSnapshotStore_Reconcile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := cas.NewSnapshotStore(dir)
	wantPath := filepath.Join(dir, "theme.css.cache.preprocessed.scss")

	changed, path, err := store.Reconcile("theme", domain.SyntaxSCSS, "$c: red;")
	require.NoError(t, err)
	assert.True(t, changed, "absent snapshot counts as changed")
	assert.Equal(t, wantPath, path)

	changed, path, err = store.Reconcile("theme", domain.SyntaxSCSS, "$c: red;")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, wantPath, path)

	changed, _, err = store.Reconcile("theme", domain.SyntaxSCSS, "$c: blue;")
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Equal(t, "$c: blue;", string(data))
}

func TestSnapshotStore_SyntaxIsPartOfName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := cas.NewSnapshotStore(dir)

	_, scss, err := store.Reconcile("theme", domain.SyntaxSCSS, "a")
	require.NoError(t, err)
	changed, sass, err := store.Reconcile("theme", domain.SyntaxSass, "a")
	require.NoError(t, err)

	assert.True(t, changed)
	assert.NotEqual(t, scss, sass)
}
