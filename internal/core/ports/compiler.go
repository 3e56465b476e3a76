package ports

import (
	"context"

	"go.trai.ch/stylecache/internal/core/domain"
)

// CompileRequest describes a single invocation of the preprocessor.
type CompileRequest struct {
	// SourcePath is the effective source handed to the preprocessor.
	SourcePath string
	Syntax     domain.Syntax
	// Style is the output style, e.g. "nested".
	Style       string
	ImportPaths []string
	Diagnostics DiagnosticsSink
}

// Compiler is the preprocessor engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile returns the CSS for req.SourcePath. Syntax and semantic errors are
	// returned wrapped in domain.ErrCompileFailed.
	Compile(ctx context.Context, req CompileRequest) (string, error)

	// Identity returns a token that changes whenever the preprocessor implementation does.
	Identity(ctx context.Context) (string, error)
}

// DiagnosticsSink receives warnings and debug output emitted during compilation.
type DiagnosticsSink interface {
	Warn(message, context string)
	Debug(message string)
}
