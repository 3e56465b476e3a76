package compiler

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// BatchEntry is the result for one entry of an editor stylesheet list.
type BatchEntry struct {
	// Ref is the entry exactly as it appeared in the list.
	Ref     string
	URL     string
	Outcome domain.Outcome
	Err     error
}

// BatchResult is the outcome of EditorStylesheets.
type BatchResult struct {
	// Joined is the rewritten list. Failed entries keep their original reference.
	Joined  string
	Entries []BatchEntry
}

// Failed reports how many entries failed.
func (r BatchResult) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome.Failed() {
			n++
		}
	}
	return n
}

// EditorStylesheets rewrites a comma separated list of stylesheet references. Each entry
// is processed independently with a derived handle; a failing entry does not stop the
// others. The returned error joins the failures of all entries.
//
// Entries run concurrently, except that entries sharing a handle share a cache slot and
// run one after another in list order.
func (s *Service) EditorStylesheets(ctx context.Context, list string) (BatchResult, error) {
	refs := strings.Split(list, EditorSeparator)
	entries := make([]BatchEntry, len(refs))
	resolved := make([]*domain.Resolved, len(refs))

	var handles []domain.Handle
	slots := make(map[domain.Handle][]int)
	for i, ref := range refs {
		r, entry := s.resolveEntry(ref)
		if r == nil {
			entries[i] = entry
			continue
		}
		resolved[i] = r
		if _, ok := slots[r.Handle]; !ok {
			handles = append(handles, r.Handle)
		}
		slots[r.Handle] = append(slots[r.Handle], i)
	}

	var g errgroup.Group
	g.SetLimit(s.opts.Concurrency)
	for _, h := range handles {
		g.Go(func() error {
			for _, i := range slots[h] {
				entries[i] = s.ensureEntry(ctx, refs[i], resolved[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	urls := make([]string, len(entries))
	var errs error
	for i, e := range entries {
		urls[i] = e.URL
		if e.Err != nil {
			errs = errors.Join(errs, zerr.With(e.Err, "reference", e.Ref))
		}
	}

	return BatchResult{
		Joined:  strings.Join(urls, EditorSeparator),
		Entries: entries,
	}, errs
}

// resolveEntry resolves one list entry. When the entry needs no compilation its final
// BatchEntry is returned instead.
func (s *Service) resolveEntry(ref string) (*domain.Resolved, BatchEntry) {
	if ref == "" {
		return nil, BatchEntry{Ref: ref, URL: ref, Outcome: domain.OutcomeSkipped}
	}

	r, err := s.deps.Resolver.Resolve(ref, "")
	switch {
	case errors.Is(err, domain.ErrNotApplicable):
		return nil, BatchEntry{Ref: ref, URL: ref, Outcome: domain.OutcomeSkipped}
	case err != nil:
		return nil, s.failedEntry(ref, err)
	}
	return r, BatchEntry{}
}

func (s *Service) ensureEntry(ctx context.Context, ref string, r *domain.Resolved) BatchEntry {
	res, err := s.Ensure(ctx, r)
	if err != nil {
		return s.failedEntry(ref, err)
	}
	return BatchEntry{Ref: ref, URL: res.URL, Outcome: res.Outcome}
}

func (s *Service) failedEntry(ref string, err error) BatchEntry {
	s.deps.Logger.Warn("editor stylesheet failed", "reference", ref)
	return BatchEntry{Ref: ref, URL: ref, Outcome: domain.OutcomeFailed, Err: err}
}
