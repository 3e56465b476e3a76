package ports

import "context"

// SourceRenderer renders templated stylesheet sources into preprocessor text.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type SourceRenderer interface {
	// Render executes the template at path and returns its output.
	Render(ctx context.Context, path string) (string, error)
}
