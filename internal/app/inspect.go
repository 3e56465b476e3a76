package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/stylecache/internal/adapters/cas" //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/ui/style"
	"go.trai.ch/zerr"
)

// Artifact states reported by Inspect.
const (
	artifactIntact   = "intact"
	artifactMissing  = "missing"
	artifactMismatch = "mismatch"
)

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	// CSS prints the stored compiled CSS after the summary.
	CSS bool
}

// Inspect prints the cache record stored for handle.
func (a *App) Inspect(_ context.Context, handle string, opts InspectOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	h := domain.SanitizeHandle(handle)
	if h == "" {
		return zerr.With(domain.ErrInvalidHandle, "handle", handle)
	}

	records, err := cas.NewRecordStore(cfg.CacheDir)
	if err != nil {
		return err
	}
	record, err := records.Get(h)
	if err != nil {
		return err
	}
	if record == nil {
		return zerr.With(domain.ErrRecordNotFound, "handle", h.String())
	}

	artifacts := cas.NewArtifactStore(cfg.CacheDir, cfg.CacheURL)
	hash, err := artifacts.Hash(h)
	if err != nil {
		return err
	}

	state := artifactIntact
	switch {
	case hash == "":
		state = artifactMissing
	case hash != record.ArtifactHash:
		state = artifactMismatch
	}

	a.field("handle", h.String())
	a.field("source", record.SourcePath)
	a.field("root context", record.RootContext)
	a.field("updated", record.UpdatedAt.Format(time.RFC3339Nano))
	a.field("compiled", fmt.Sprintf("%d bytes", len(record.CompiledCSS)))
	a.field("artifact", fmt.Sprintf("%s (%s)", artifacts.Path(h), state))
	a.field("url", artifacts.URL(h, ""))
	if record.RenderedHash != "" {
		a.field("rendered", record.RenderedHash)
	}

	if opts.CSS {
		_, _ = fmt.Fprintln(a.out)
		_, _ = fmt.Fprint(a.out, record.CompiledCSS)
	}
	return nil
}

func (a *App) field(key, value string) {
	_, _ = fmt.Fprintf(a.out, "%s %s\n", style.Key.Render(fmt.Sprintf("%-12s", key)), value)
}
