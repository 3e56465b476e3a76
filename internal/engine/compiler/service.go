// Package compiler implements the compilation orchestrator: it resolves stylesheet
// references, decides whether the cached output is still valid and recompiles when not.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/stylecache/internal/engine/validity"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// EditorSeparator delimits the entries of an editor stylesheet list.
const EditorSeparator = ","

// DefaultConcurrency bounds the number of editor entries compiled at once.
const DefaultConcurrency = 4

// Deps holds the collaborators of a Service.
type Deps struct {
	Resolver  ports.PathResolver
	Records   ports.RecordStore
	Artifacts ports.ArtifactStore
	Snapshots ports.SnapshotStore
	Compiler  ports.Compiler
	Renderer  ports.SourceRenderer
	// PostProcessor is optional. When set, compiled CSS passes through it before storage.
	PostProcessor ports.PostProcessor
	Diagnostics   ports.DiagnosticsSink
	Logger        ports.Logger
	Tracer        ports.Tracer
}

// Options tunes a Service.
type Options struct {
	// Style is the preprocessor output style. Empty means nested.
	Style string
	// Identity overrides the compiler identity reported by the Compiler.
	Identity string
	// Concurrency bounds editor batch processing. Zero means DefaultConcurrency.
	Concurrency int
}

// Result describes one EnsureCompiled call.
type Result struct {
	URL     string
	Handle  domain.Handle
	Outcome domain.Outcome
	Reason  validity.Reason
}

// Service compiles stylesheets on demand and serves cached output while it stays valid.
// It is safe for concurrent use.
type Service struct {
	deps Deps
	opts Options

	group singleflight.Group

	mu          sync.Mutex
	rootContext string
}

// NewService creates a Service.
func NewService(deps Deps, opts Options) *Service {
	if opts.Style == "" {
		opts.Style = domain.StyleNested
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Service{deps: deps, opts: opts}
}

// RootContext returns the token that identifies the running preprocessor. Records written
// under a different token are rebuilt. The token is computed once per Service.
func (s *Service) RootContext(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rootContext != "" {
		return s.rootContext, nil
	}

	identity := s.opts.Identity
	if identity == "" {
		id, err := s.deps.Compiler.Identity(ctx)
		if err != nil {
			return "", err
		}
		identity = id
	}

	s.rootContext = rootContext(identity)
	return s.rootContext, nil
}

// EnsureCompiled makes sure the cached artifact for resolved is valid, recompiling it if
// needed, and returns its public URL.
func (s *Service) EnsureCompiled(ctx context.Context, resolved *domain.Resolved) (string, error) {
	res, err := s.Ensure(ctx, resolved)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

// Ensure is EnsureCompiled with the outcome and the validity reason attached.
func (s *Service) Ensure(ctx context.Context, resolved *domain.Resolved) (Result, error) {
	ctx, span := s.deps.Tracer.Start(ctx, "compile "+resolved.Handle.String())
	defer span.End()

	span.SetAttribute(domain.AttrHandle, resolved.Handle.String())
	span.SetAttribute(domain.AttrSource, resolved.SourcePath)

	// Callers that share a handle and a source share one rebuild. The URL carries each
	// caller's own query string, so it is computed outside the group.
	shared := s.shared(ctx, resolved)
	if shared.Err != nil {
		span.SetAttribute(domain.AttrOutcome, string(domain.OutcomeFailed))
		span.RecordError(shared.Err)
		return Result{Handle: resolved.Handle, Outcome: domain.OutcomeFailed}, shared.Err
	}

	decision, _ := shared.Val.(validity.Decision)
	outcome := domain.OutcomeCached
	if decision.Rebuild {
		outcome = domain.OutcomeCompiled
	}
	span.SetAttribute(domain.AttrRebuild, decision.Rebuild)
	span.SetAttribute(domain.AttrReason, string(decision.Reason))
	span.SetAttribute(domain.AttrOutcome, string(outcome))

	return Result{
		URL:     s.deps.Artifacts.URL(resolved.Handle, resolved.Reference.Query),
		Handle:  resolved.Handle,
		Outcome: outcome,
		Reason:  decision.Reason,
	}, nil
}

// shared runs ensure once per handle and source for all concurrent callers. The rebuild
// runs detached from the caller's cancellation, so a caller that gives up only stops
// waiting; the others still receive the result.
func (s *Service) shared(ctx context.Context, resolved *domain.Resolved) singleflight.Result {
	key := resolved.Handle.String() + "\x00" + resolved.SourcePath
	ch := s.group.DoChan(key, func() (any, error) {
		return s.ensure(context.WithoutCancel(ctx), resolved)
	})

	select {
	case res := <-ch:
		return res
	case <-ctx.Done():
		select {
		case res := <-ch:
			return res
		default:
			return singleflight.Result{Err: ctx.Err()}
		}
	}
}

//nolint:cyclop // each step maps onto one failure kind
func (s *Service) ensure(ctx context.Context, resolved *domain.Resolved) (validity.Decision, error) {
	rootCtx, err := s.RootContext(ctx)
	if err != nil {
		return validity.Decision{}, err
	}

	record, err := s.deps.Records.Get(resolved.Handle)
	if err != nil {
		return validity.Decision{}, err
	}
	if record == nil {
		record = domain.NewEmptyRecord(rootCtx, resolved.SourcePath)
	}

	effective := resolved.SourcePath
	var renderedHash string
	dynamicChanged := false
	if resolved.Templated {
		text, renderErr := s.deps.Renderer.Render(ctx, resolved.SourcePath)
		if renderErr != nil {
			return validity.Decision{}, renderErr
		}
		changed, path, reconcileErr := s.deps.Snapshots.Reconcile(resolved.Handle, resolved.Syntax, text)
		if reconcileErr != nil {
			return validity.Decision{}, reconcileErr
		}
		effective = path
		renderedHash = domain.HashText(text)
		// The snapshot is overwritten before compiling, so a failed compile would leave it
		// matching. The rendered hash in the record catches that case.
		dynamicChanged = changed || record.RenderedHash != renderedHash
	}

	info, err := os.Stat(resolved.SourcePath)
	if err != nil {
		return validity.Decision{}, errors.Join(
			domain.ErrSourceStatFailed,
			zerr.With(err, "source", resolved.SourcePath),
		)
	}

	artifactHash, err := s.deps.Artifacts.Hash(resolved.Handle)
	if err != nil {
		return validity.Decision{}, err
	}

	decision := validity.Evaluate(validity.Input{
		Record:         record,
		SourceModTime:  info.ModTime(),
		RootContext:    rootCtx,
		DynamicChanged: dynamicChanged,
		ArtifactIntact: artifactHash != "" && artifactHash == record.ArtifactHash,
	})
	if !decision.Rebuild {
		s.deps.Logger.Debug("serving cached stylesheet", "handle", resolved.Handle)
		return decision, nil
	}

	s.deps.Logger.Debug("compiling stylesheet",
		"handle", resolved.Handle,
		"source", effective,
		"reason", string(decision.Reason),
	)

	css, err := s.deps.Compiler.Compile(ctx, ports.CompileRequest{
		SourcePath:  effective,
		Syntax:      resolved.Syntax,
		Style:       s.opts.Style,
		ImportPaths: []string{filepath.Dir(resolved.SourcePath)},
		Diagnostics: s.deps.Diagnostics,
	})
	if err != nil {
		return validity.Decision{}, err
	}

	if s.deps.PostProcessor != nil {
		css, err = s.deps.PostProcessor.Process(css)
		if err != nil {
			return validity.Decision{}, err
		}
	}

	next := &domain.CacheRecord{
		SchemaVersion: domain.RecordSchemaVersion,
		RootContext:   rootCtx,
		SourcePath:    effective,
		CompiledCSS:   css,
		ArtifactHash:  domain.HashCSS(css),
		RenderedHash:  renderedHash,
		UpdatedAt:     info.ModTime(),
	}
	if err := s.persist(resolved.Handle, next); err != nil {
		return validity.Decision{}, err
	}

	s.deps.Logger.Info("compiled stylesheet", "handle", resolved.Handle)
	return decision, nil
}

// persist writes the record, then the artifact. If the artifact cannot be written the
// record is rewritten as stale so the pair is never trusted.
func (s *Service) persist(handle domain.Handle, record *domain.CacheRecord) error {
	if err := s.deps.Records.Put(handle, record); err != nil {
		return errors.Join(domain.ErrPersistenceFailed, zerr.With(err, "handle", handle.String()))
	}

	writeErr := s.deps.Artifacts.Write(handle, record.CompiledCSS)
	if writeErr == nil {
		return nil
	}

	record.MarkStale()
	if err := s.deps.Records.Put(handle, record); err != nil {
		s.deps.Logger.Warn("failed to mark cache record stale", "handle", handle, "error", err.Error())
	}
	return errors.Join(domain.ErrPersistenceFailed, zerr.With(writeErr, "handle", handle.String()))
}

// Stylesheet filters a registered stylesheet reference. Preprocessor sources are compiled
// and replaced by the URL of their artifact; anything else is returned unchanged.
func (s *Service) Stylesheet(ctx context.Context, src, handle string) (string, error) {
	res, err := s.Process(ctx, src, handle)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

// Process resolves src and ensures it is compiled. A reference that is not a preprocessor
// source yields OutcomeSkipped and its own text as URL.
func (s *Service) Process(ctx context.Context, src, handle string) (Result, error) {
	resolved, err := s.deps.Resolver.Resolve(src, handle)
	if err != nil {
		if errors.Is(err, domain.ErrNotApplicable) {
			return Result{URL: src, Outcome: domain.OutcomeSkipped}, nil
		}
		return Result{Outcome: domain.OutcomeFailed}, err
	}
	return s.Ensure(ctx, resolved)
}

func rootContext(identity string) string {
	return fmt.Sprintf("%d:%s", domain.RecordSchemaVersion, identity)
}
