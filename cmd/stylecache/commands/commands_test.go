package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylecache/cmd/stylecache/commands"
	"go.trai.ch/stylecache/internal/app"
	"go.trai.ch/stylecache/internal/build"
)

type mockApp struct {
	logOpts     app.LogOptions
	compileFunc func(ctx context.Context, refs []string, opts app.CompileOptions) error
	editorList  string
	watchRefs   []string
	inspected   string
	inspectOpts app.InspectOptions
	cleanOpts   *app.CleanOptions
}

func (m *mockApp) ConfigureLogging(opts app.LogOptions) {
	m.logOpts = opts
}

func (m *mockApp) Compile(ctx context.Context, refs []string, opts app.CompileOptions) error {
	if m.compileFunc != nil {
		return m.compileFunc(ctx, refs, opts)
	}
	return nil
}

func (m *mockApp) Editor(_ context.Context, list string) error {
	m.editorList = list
	return nil
}

func (m *mockApp) Watch(_ context.Context, refs []string) error {
	m.watchRefs = refs
	return nil
}

func (m *mockApp) Inspect(_ context.Context, handle string, opts app.InspectOptions) error {
	m.inspected = handle
	m.inspectOpts = opts
	return nil
}

func (m *mockApp) Clean(_ context.Context, opts app.CleanOptions) error {
	m.cleanOpts = &opts
	return nil
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Compile(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.CompileOptions
		var capturedRefs []string

		m := &mockApp{
			compileFunc: func(_ context.Context, refs []string, opts app.CompileOptions) error {
				capturedRefs = refs
				capturedOpts = opts
				return nil
			},
		}

		_, err := execute(t, m, "compile", "main.scss?ver=2", "--handle", "theme", "--html-diagnostics", "--verbose")
		require.NoError(t, err)
		assert.Equal(t, []string{"main.scss?ver=2"}, capturedRefs)
		assert.Equal(t, "theme", capturedOpts.Handle)
		assert.True(t, capturedOpts.HTMLDiagnostics)
		assert.False(t, capturedOpts.All)
		assert.True(t, m.logOpts.Verbose)
		assert.False(t, m.logOpts.JSON)
	})

	t.Run("all without references", func(t *testing.T) {
		called := false
		m := &mockApp{
			compileFunc: func(_ context.Context, refs []string, opts app.CompileOptions) error {
				called = true
				assert.Empty(t, refs)
				assert.True(t, opts.All)
				return nil
			},
		}

		_, err := execute(t, m, "compile", "--all", "--json")
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, m.logOpts.JSON)
	})

	t.Run("returns error on compile failure", func(t *testing.T) {
		m := &mockApp{
			compileFunc: func(context.Context, []string, app.CompileOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, m, "compile", "main.scss")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no references provided", func(t *testing.T) {
		m := &mockApp{
			compileFunc: func(context.Context, []string, app.CompileOptions) error {
				panic("should not be called")
			},
		}

		out, err := execute(t, m, "compile")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Editor(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "editor", "a.scss,b.css")
	require.NoError(t, err)
	assert.Equal(t, "a.scss,b.css", m.editorList)

	_, err = execute(t, &mockApp{}, "editor")
	require.Error(t, err)
}

func TestCommands_Watch(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "watch", "main.scss")
	require.NoError(t, err)
	assert.Equal(t, []string{"main.scss"}, m.watchRefs)
}

func TestCommands_Inspect(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "inspect", "main", "--css")
	require.NoError(t, err)
	assert.Equal(t, "main", m.inspected)
	assert.True(t, m.inspectOpts.CSS)
}

func TestCommands_Clean(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "clean", "--dry-run")
	require.NoError(t, err)
	require.NotNil(t, m.cleanOpts)
	assert.True(t, m.cleanOpts.DryRun)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, build.Commit)
}

func TestCommands_RootFlags(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "--help")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "--verbose")
		assert.Contains(t, out, "-v, --version")
	})

	t.Run("short version flag", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "-v")
		require.NoError(t, err)
		assert.Contains(t, out, "stylecache version "+build.Version)
	})

	t.Run("verbose is persistent", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "clean", "--verbose")
		require.NoError(t, err)
		assert.True(t, m.logOpts.Verbose)
	})
}
