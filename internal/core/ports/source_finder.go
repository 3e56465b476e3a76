package ports

import "iter"

// SourceFinder discovers compilable stylesheet sources.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_finder.go -destination=mocks/mock_source_finder.go -package=mocks
type SourceFinder interface {
	// Sources yields the sources under root as slash separated paths relative to root.
	// Directories listed in exclude are not descended into.
	Sources(root string, exclude ...string) iter.Seq[string]
}
