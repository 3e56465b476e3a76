// Package resolver maps stylesheet references onto source files and cache handles.
package resolver

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements ports.PathResolver over a set of URL mounts and a project root.
type Resolver struct {
	root      string
	mounts    []domain.Mount
	qualified bool
}

// New creates a Resolver from the project configuration.
func New(cfg *domain.Config) *Resolver {
	return &Resolver{
		root:      cfg.Root,
		mounts:    cfg.Mounts,
		qualified: cfg.QualifiedHandles,
	}
}

// Resolve maps raw onto a source file.
func (r *Resolver) Resolve(raw, handle string) (*domain.Resolved, error) {
	ref := domain.ParseReference(raw)

	syntax, templated, ok := domain.MatchSource(ref.Path)
	if !ok {
		return nil, domain.ErrNotApplicable
	}

	sourcePath, ok := r.mapPath(ref.Path)
	if !ok {
		return nil, domain.ErrNotApplicable
	}

	info, err := os.Stat(sourcePath)
	if err != nil {
		return nil, errors.Join(domain.ErrResolutionFailed, zerr.With(zerr.Wrap(err, "source not found"), "source", sourcePath))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Join(domain.ErrResolutionFailed, zerr.With(zerr.New("source is not a regular file"), "source", sourcePath))
	}

	h := domain.SanitizeHandle(handle)
	if h == "" {
		h = domain.HandleFromURL(raw)
		if r.qualified {
			h = domain.QualifiedHandle(h, ref)
		}
	}
	if h == "" {
		return nil, errors.Join(domain.ErrInvalidHandle, zerr.With(zerr.New("handle is empty after sanitizing"), "reference", raw))
	}

	return &domain.Resolved{
		Reference:  ref,
		SourcePath: sourcePath,
		Handle:     h,
		Syntax:     syntax,
		Templated:  templated,
	}, nil
}

// mapPath rewrites a reference path to a filesystem path. The first mount whose URL is a
// prefix wins. Plain paths resolve against the root. Anything else is not ours.
func (r *Resolver) mapPath(p string) (string, bool) {
	for _, m := range r.mounts {
		if rest, ok := strings.CutPrefix(p, m.URL); ok {
			return filepath.Join(m.Dir, filepath.FromSlash(unescape(rest))), true
		}
	}

	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}

	local := filepath.FromSlash(u.Path)
	if filepath.IsAbs(local) {
		if rel, err := filepath.Rel(r.root, local); err == nil && !strings.HasPrefix(rel, "..") {
			return local, true
		}
		return filepath.Join(r.root, local), true
	}
	return filepath.Join(r.root, local), true
}

func unescape(p string) string {
	if s, err := url.PathUnescape(p); err == nil {
		return s
	}
	return p
}
