package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylecache/internal/adapters/cas"
	"go.trai.ch/stylecache/internal/core/domain"
)

func TestRecordStore_PutGet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := cas.NewRecordStore(dir)
	require.NoError(t, err)

	rec := &domain.CacheRecord{
		RootContext:  "1:sassc 3.6.2",
		SourcePath:   "/src/main.scss",
		CompiledCSS:  "a{color:red}",
		ArtifactHash: domain.HashCSS("a{color:red}"),
		UpdatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 123, time.UTC),
	}

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, store.Put("main", rec))

		got, err := store.Get("main")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.RecordSchemaVersion, got.SchemaVersion)
		assert.Equal(t, rec.CompiledCSS, got.CompiledCSS)
		assert.Equal(t, rec.RootContext, got.RootContext)
		assert.True(t, rec.UpdatedAt.Equal(got.UpdatedAt))

		_, err = os.Stat(filepath.Join(dir, "main.css.cache"))
		require.NoError(t, err)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := store.Get("missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRecordStore_Overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := cas.NewRecordStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("main", &domain.CacheRecord{RootContext: "a", CompiledCSS: "one"}))
	got, err := store.Get("main")
	require.NoError(t, err)
	assert.Equal(t, "one", got.CompiledCSS)

	require.NoError(t, store.Put("main", &domain.CacheRecord{RootContext: "a", CompiledCSS: "two"}))
	got, err = store.Get("main")
	require.NoError(t, err)
	assert.Equal(t, "two", got.CompiledCSS)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestRecordStore_ExternalChangeInvalidatesMemo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := cas.NewRecordStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("main", &domain.CacheRecord{RootContext: "a", CompiledCSS: "one"}))
	_, err = store.Get("main")
	require.NoError(t, err)

	other, err := cas.NewRecordStore(dir)
	require.NoError(t, err)
	require.NoError(t, other.Put("main", &domain.CacheRecord{RootContext: "a", CompiledCSS: "a much longer body"}))

	got, err := store.Get("main")
	require.NoError(t, err)
	assert.Equal(t, "a much longer body", got.CompiledCSS)
}

func TestRecordStore_SameSizeRewriteInvalidatesMemo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := cas.NewRecordStore(dir)
	require.NoError(t, err)

	first := &domain.CacheRecord{RootContext: "a", CompiledCSS: "a{b:1}", ArtifactHash: domain.HashCSS("a{b:1}")}
	require.NoError(t, store.Put("mainscss", first))
	_, err = store.Get("mainscss")
	require.NoError(t, err)

	path := filepath.Join(dir, domain.RecordName("mainscss"))
	before, err := os.Stat(path)
	require.NoError(t, err)

	other, err := cas.NewRecordStore(dir)
	require.NoError(t, err)
	second := &domain.CacheRecord{RootContext: "a", CompiledCSS: "a{b:2}", ArtifactHash: domain.HashCSS("a{b:2}")}
	require.NoError(t, other.Put("mainscss", second))
	require.NoError(t, os.Chtimes(path, before.ModTime(), before.ModTime()))

	after, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, before.Size(), after.Size())
	require.True(t, before.ModTime().Equal(after.ModTime()))

	got, err := store.Get("mainscss")
	require.NoError(t, err)
	assert.Equal(t, "a{b:2}", got.CompiledCSS)
	assert.Equal(t, second.ArtifactHash, got.ArtifactHash)
}

func TestRecordStore_UnusableRecordsReadAsAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"corrupt json", "{ invalid json"},
		{"foreign schema version", `{"schema_version": 99, "root_context": "a", "compiled_css": "x"}`},
		{"legacy unversioned", `{"root_context": "a", "compiled_css": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			store, err := cas.NewRecordStore(dir)
			require.NoError(t, err)

			//nolint:gosec // 0644 is fine for test
			require.NoError(t, os.WriteFile(filepath.Join(dir, "main.css.cache"), []byte(tt.content), 0o644))

			got, err := store.Get("main")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestRecordStore_Remove(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := cas.NewRecordStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("main", &domain.CacheRecord{RootContext: "a", CompiledCSS: "x"}))
	require.NoError(t, store.Remove("main"))
	require.NoError(t, store.Remove("main"))

	got, err := store.Get("main")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecordStore_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "cache")
	store, err := cas.NewRecordStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("main", &domain.CacheRecord{RootContext: "a"}))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
