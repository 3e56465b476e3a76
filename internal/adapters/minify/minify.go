// Package minify post-processes compiled CSS with tdewolff/minify.
package minify

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
)

const mediaType = "text/css"

var _ ports.PostProcessor = (*Minifier)(nil)

// Minifier implements ports.PostProcessor.
type Minifier struct {
	m *minify.M
}

// New creates a CSS minifier.
func New() *Minifier {
	m := minify.New()
	m.AddFunc(mediaType, css.Minify)
	return &Minifier{m: m}
}

// Process returns the minified form of src.
func (p *Minifier) Process(src string) (string, error) {
	out, err := p.m.String(mediaType, src)
	if err != nil {
		return "", zerr.Wrap(err, "failed to minify css")
	}
	return out, nil
}
