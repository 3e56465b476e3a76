package domain

// Outcome describes what happened to a stylesheet during one compile request.
type Outcome string

const (
	// OutcomeCached indicates the cached artifact was served without recompiling.
	OutcomeCached Outcome = "cached"
	// OutcomeCompiled indicates the source was recompiled and the cache rewritten.
	OutcomeCompiled Outcome = "compiled"
	// OutcomeFailed indicates the request failed.
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped indicates the reference was not a preprocessor source and passed through.
	OutcomeSkipped Outcome = "skipped"
)

// Span attribute keys recorded for each compile request.
const (
	AttrHandle  = "stylecache.handle"
	AttrSource  = "stylecache.source"
	AttrRebuild = "stylecache.rebuild"
	AttrReason  = "stylecache.reason"
	AttrOutcome = "stylecache.outcome"
)

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o == OutcomeFailed
}
