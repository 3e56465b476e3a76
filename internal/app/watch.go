package app

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/stylecache/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch compiles refs (or every discovered source when refs is empty) and recompiles
// them whenever a stylesheet source under the project root changes. It returns when
// ctx is canceled.
func (a *App) Watch(ctx context.Context, refs []string) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	discover := len(refs) == 0
	targets := func() []string {
		if discover {
			return slices.Collect(a.finder.Sources(cfg.Root, cfg.CacheDir))
		}
		return refs
	}

	svc, err := a.newService(cfg, false)
	if err != nil {
		return err
	}

	// Failures are reported per reference and watching continues.
	if err := a.compileAll(ctx, svc, targets(), ""); err != nil {
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, cfg.Root, cfg.CacheDir); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching for changes", "root", cfg.Root)

	debouncer := watcher.NewDebouncer(cfg.Debounce, func(paths []string) {
		if ctx.Err() != nil {
			return
		}
		a.logger.Debug("sources changed", "count", len(paths))
		if err := a.compileAll(ctx, svc, targets(), ""); err != nil {
			a.logger.Error(err)
		}
	})

	for event := range a.watcher.Events() {
		if _, _, ok := domain.MatchSource(event.Path); !ok || cacheWrite(cfg, event.Path) {
			continue
		}
		debouncer.Add(event.Path)
	}

	if ctx.Err() != nil {
		return nil
	}
	return domain.ErrWatchFailed
}

// cacheWrite reports whether path belongs to the cache rather than to the sources.
func cacheWrite(cfg *domain.Config, path string) bool {
	if domain.IsSnapshotName(filepath.Base(path)) {
		return true
	}
	if filepath.Clean(cfg.CacheDir) == filepath.Clean(cfg.Root) {
		return false
	}
	rel, err := filepath.Rel(cfg.CacheDir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
