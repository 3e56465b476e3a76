// Package render materializes templated stylesheet sources with text/template.
package render

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceRenderer = (*Renderer)(nil)

// Data is the value templates are executed with.
type Data struct {
	// Vars holds the template variables from the project configuration.
	Vars map[string]string
	// Source is the absolute path of the template being rendered.
	Source string
	// Dir is the directory containing the template.
	Dir string
}

// Renderer implements ports.SourceRenderer.
type Renderer struct {
	vars map[string]string
}

// New creates a Renderer that exposes vars to every template.
func New(vars map[string]string) *Renderer {
	if vars == nil {
		vars = map[string]string{}
	}
	return &Renderer{vars: vars}
}

// Render executes the template at path and returns its output.
func (r *Renderer) Render(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	//nolint:gosec // Path comes from the resolver
	src, err := os.ReadFile(path)
	if err != nil {
		return "", renderError(zerr.Wrap(err, "failed to read template"), path)
	}

	tmpl, err := template.New(filepath.Base(path)).
		Option("missingkey=error").
		Funcs(funcs()).
		Parse(string(src))
	if err != nil {
		return "", renderError(zerr.Wrap(err, "failed to parse template"), path)
	}

	var buf bytes.Buffer
	data := Data{Vars: r.vars, Source: path, Dir: filepath.Dir(path)}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", renderError(zerr.Wrap(err, "failed to execute template"), path)
	}
	return buf.String(), nil
}

func renderError(err error, path string) error {
	return errors.Join(domain.ErrRenderFailed, zerr.With(err, "template", path))
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"env": os.Getenv,
		"default": func(def, v string) string {
			if v == "" {
				return def
			}
			return v
		},
		"join": strings.Join,
	}
}
