// Package sass drives a sassc-compatible preprocessor binary.
package sass

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler by executing the preprocessor once per request.
type Compiler struct {
	binary  string
	timeout time.Duration

	mu       sync.Mutex
	identity string
}

// New creates a Compiler for binary. A positive timeout bounds each invocation.
func New(binary string, timeout time.Duration) *Compiler {
	if binary == "" {
		binary = domain.DefaultCompilerBinary
	}
	return &Compiler{binary: binary, timeout: timeout}
}

// Compile runs the preprocessor on req.SourcePath and returns the CSS it prints.
func (c *Compiler) Compile(ctx context.Context, req ports.CompileRequest) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{"--style", req.Style}
	if req.Syntax == domain.SyntaxSass {
		args = append(args, "--sass")
	}
	for _, p := range req.ImportPaths {
		args = append(args, "--load-path", p)
	}
	args = append(args, req.SourcePath)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...) //nolint:gosec // binary is configured by the project
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	forwardDiagnostics(stderr.String(), req.Diagnostics)
	if err != nil {
		return "", c.compileError(ctx, err, req.SourcePath, stderr.String())
	}
	return stdout.String(), nil
}

// Identity returns "<binary> <first line of --version>". The result is memoized after the
// first successful call.
func (c *Compiler) Identity(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.identity != "" {
		return c.identity, nil
	}

	out, err := exec.CommandContext(ctx, c.binary, "--version").Output() //nolint:gosec // see Compile
	if err != nil {
		return "", errors.Join(
			domain.ErrCompilerUnavailable,
			zerr.With(zerr.Wrap(err, "failed to query preprocessor version"), "binary", c.binary),
		)
	}

	version, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	c.identity = filepath.Base(c.binary) + " " + strings.TrimSpace(version)
	return c.identity, nil
}

func (c *Compiler) compileError(ctx context.Context, err error, source, stderr string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zerr.With(zerr.Wrap(ctxErr, "preprocessor interrupted"), "source", source)
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return errors.Join(
			domain.ErrCompilerUnavailable,
			zerr.With(zerr.Wrap(err, "failed to run preprocessor"), "binary", c.binary),
		)
	}

	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = "preprocessor exited without output"
	}
	cause := zerr.With(zerr.New(msg), "source", source)
	return errors.Join(domain.ErrCompileFailed, zerr.With(cause, "exit_code", exitErr.ExitCode()))
}
