package ports

// PostProcessor transforms compiled CSS before it is cached.
//
//go:generate go run go.uber.org/mock/mockgen -source=postprocessor.go -destination=mocks/mock_postprocessor.go -package=mocks
type PostProcessor interface {
	Process(css string) (string, error)
}
