// Package validity decides whether a cached stylesheet must be recompiled.
package validity

import (
	"time"

	"go.trai.ch/stylecache/internal/core/domain"
)

// Reason names the check that decided a rebuild.
type Reason string

const (
	// ReasonFresh means every check passed and the cached output can be served.
	ReasonFresh Reason = "fresh"
	// ReasonEmpty means the record carries no compiled output.
	ReasonEmpty Reason = "empty"
	// ReasonStale means the source was modified after the record was written.
	ReasonStale Reason = "stale"
	// ReasonRootContext means the record was produced by a different preprocessor.
	ReasonRootContext Reason = "root_context"
	// ReasonDynamic means the rendered text of a templated source changed.
	ReasonDynamic Reason = "dynamic"
	// ReasonArtifact means the compiled artifact is missing or does not match the record.
	ReasonArtifact Reason = "artifact"
)

// Input is everything the decision depends on.
type Input struct {
	// Record is the stored record; nil is treated as empty.
	Record *domain.CacheRecord
	// SourceModTime is the modification time of the true source file.
	SourceModTime time.Time
	// RootContext identifies the current preprocessor.
	RootContext string
	// DynamicChanged is true when a templated source rendered to new text.
	DynamicChanged bool
	// ArtifactIntact is true when the artifact on disk matches the record.
	ArtifactIntact bool
}

// Decision is the outcome of Evaluate.
type Decision struct {
	Rebuild bool
	Reason  Reason
}

// Evaluate runs the checks in order and stops at the first one that demands a rebuild.
func Evaluate(in Input) Decision {
	switch {
	case in.Record.IsEmpty():
		return rebuild(ReasonEmpty)
	case in.SourceModTime.After(in.Record.UpdatedAt):
		return rebuild(ReasonStale)
	case in.Record.RootContext != in.RootContext:
		return rebuild(ReasonRootContext)
	case in.DynamicChanged:
		return rebuild(ReasonDynamic)
	case !in.ArtifactIntact:
		return rebuild(ReasonArtifact)
	}
	return Decision{Reason: ReasonFresh}
}

// NeedsRebuild reports whether the cached output must be regenerated.
func NeedsRebuild(in Input) bool {
	return Evaluate(in).Rebuild
}

func rebuild(r Reason) Decision {
	return Decision{Rebuild: true, Reason: r}
}
