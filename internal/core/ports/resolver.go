package ports

import "go.trai.ch/stylecache/internal/core/domain"

// PathResolver maps stylesheet references onto source files and cache handles.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Resolve maps raw onto a source file. A non-empty handle is used as the cache key,
	// otherwise one is derived from raw.
	//
	// It returns domain.ErrNotApplicable for references that are not preprocessor sources,
	// and domain.ErrResolutionFailed when the source file does not exist.
	Resolve(raw, handle string) (*domain.Resolved, error)
}
