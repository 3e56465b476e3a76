// Package app implements the application layer for stylecache.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.trai.ch/stylecache/internal/adapters/cas"         //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/adapters/diagnostics" //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/adapters/render"      //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/adapters/resolver"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/adapters/sass"        //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/stylecache/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	watcher      ports.Watcher
	finder       ports.SourceFinder
	minifier     ports.PostProcessor

	compiler ports.Compiler
	out      io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	watcher ports.Watcher,
	finder ports.SourceFinder,
	minifier ports.PostProcessor,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		watcher:      watcher,
		finder:       finder,
		minifier:     minifier,
		out:          os.Stdout,
	}
}

// WithCompiler replaces the preprocessor built from the configuration.
// This is primarily used for testing without a sassc binary.
func (a *App) WithCompiler(c ports.Compiler) *App {
	a.compiler = c
	return a
}

// WithOutput sets the writer that receives command reports.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// LogOptions configures the logger for one invocation.
type LogOptions struct {
	JSON    bool
	Verbose bool
}

// ConfigureLogging applies opts when the logger supports them.
func (a *App) ConfigureLogging(opts LogOptions) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.JSON)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(opts.Verbose)
	}
}

// CompileOptions configuration for the Compile method.
type CompileOptions struct {
	// All adds every source discovered under the project root.
	All bool
	// Handle overrides the derived cache handle. Only valid for a single reference.
	Handle string
	// HTMLDiagnostics renders preprocessor diagnostics as inline HTML on the output.
	HTMLDiagnostics bool
}

// Compile compiles the given references and reports one line per reference.
func (a *App) Compile(ctx context.Context, refs []string, opts CompileOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.All {
		refs = append(refs, slices.Collect(a.finder.Sources(cfg.Root, cfg.CacheDir))...)
	}
	if len(refs) == 0 {
		return domain.ErrNoReferences
	}
	if opts.Handle != "" && len(refs) > 1 {
		return errors.Join(domain.ErrInvalidHandle, zerr.New("a handle needs exactly one reference"))
	}

	svc, err := a.newService(cfg, opts.HTMLDiagnostics)
	if err != nil {
		return err
	}

	return a.compileAll(ctx, svc, refs, opts.Handle)
}

// Editor rewrites a comma separated editor stylesheet list and prints the result.
func (a *App) Editor(ctx context.Context, list string) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	svc, err := a.newService(cfg, false)
	if err != nil {
		return err
	}

	res, batchErr := svc.EditorStylesheets(ctx, list)
	_, _ = fmt.Fprintln(a.out, res.Joined)
	if batchErr != nil {
		return zerr.With(batchErr, "failed", res.Failed())
	}
	return nil
}

func (a *App) compileAll(ctx context.Context, svc *compiler.Service, refs []string, handle string) error {
	var errs error
	for _, ref := range refs {
		if ctx.Err() != nil {
			return errors.Join(errs, ctx.Err())
		}

		res, err := svc.Process(ctx, ref, handle)
		a.report(ref, res, err)
		if err != nil {
			errs = errors.Join(errs, zerr.With(err, "reference", ref))
		}
	}
	return errs
}

// newService builds the compilation service for cfg.
func (a *App) newService(cfg *domain.Config, htmlDiagnostics bool) (*compiler.Service, error) {
	records, err := cas.NewRecordStore(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	comp := a.compiler
	if comp == nil {
		comp = sass.New(cfg.CompilerBinary, cfg.CompilerTimeout)
	}

	var sink ports.DiagnosticsSink = diagnostics.NewLogSink(a.logger, cfg.CompilerBinary)
	if htmlDiagnostics {
		sink = diagnostics.Multi{sink, diagnostics.NewHTMLSink(a.out)}
	}

	deps := compiler.Deps{
		Resolver:    resolver.New(cfg),
		Records:     records,
		Artifacts:   cas.NewArtifactStore(cfg.CacheDir, cfg.CacheURL),
		Snapshots:   cas.NewSnapshotStore(cfg.CacheDir),
		Compiler:    comp,
		Renderer:    render.New(cfg.TemplateVars),
		Diagnostics: sink,
		Logger:      a.logger,
		Tracer:      a.tracer,
	}
	if cfg.Minify {
		deps.PostProcessor = a.minifier
	}

	return compiler.NewService(deps, compiler.Options{
		Style:    cfg.Style,
		Identity: cfg.CompilerIdentity,
	}), nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// DryRun reports what would be removed without removing it.
	DryRun bool
}

// Clean removes the compiled artifact cache.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.DryRun {
		a.logger.Info(fmt.Sprintf("would remove %s", cfg.CacheDir))
		return nil
	}

	a.logger.Info("removing stylesheet cache...", "dir", cfg.CacheDir)
	if err := os.RemoveAll(cfg.CacheDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove stylesheet cache"), "dir", cfg.CacheDir)
	}
	a.logger.Info("removed stylesheet cache")
	return nil
}
