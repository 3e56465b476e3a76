package render_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylecache/internal/adapters/render"
	"go.trai.ch/stylecache/internal/core/domain"
)

func writeTemplate(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.scss.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(body), domain.FilePerm))
	return path
}

func TestRenderer_Render(t *testing.T) {
	t.Setenv("STYLECACHE_TEST_ACCENT", "#f00")

	r := render.New(map[string]string{"primary": "#333"})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"static text", "a { color: red; }", "a { color: red; }"},
		{"vars", "$primary: {{ .Vars.primary }};", "$primary: #333;"},
		{"env", `$accent: {{ env "STYLECACHE_TEST_ACCENT" }};`, "$accent: #f00;"},
		{"default", `$x: {{ default "1px" (env "STYLECACHE_TEST_UNSET") }};`, "$x: 1px;"},
		{"range", `{{ range $k, $v := .Vars }}${{ $k }}: {{ $v }};{{ end }}`, "$primary: #333;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemplate(t, tt.body)
			got, err := r.Render(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_Dir(t *testing.T) {
	t.Parallel()

	path := writeTemplate(t, `@import "{{ .Dir }}/base";`)
	got, err := render.New(nil).Render(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, `@import "`+filepath.Dir(path)+`/base";`, got)
}

func TestRenderer_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"parse error", "{{ .Vars.primary "},
		{"missing key", "{{ .Vars.missing }}"},
		{"unknown function", "{{ nope }}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeTemplate(t, tt.body)
			_, err := render.New(map[string]string{"primary": "#333"}).Render(context.Background(), path)
			require.ErrorIs(t, err, domain.ErrRenderFailed)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := render.New(nil).Render(context.Background(), filepath.Join(t.TempDir(), "nope.scss.tmpl"))
		require.ErrorIs(t, err, domain.ErrRenderFailed)
	})
}

func TestRenderer_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := render.New(nil).Render(ctx, writeTemplate(t, "a"))
	require.ErrorIs(t, err, context.Canceled)
}
