package domain

import (
	"regexp"
	"strings"
)

// Syntax is the preprocessor dialect of a stylesheet source.
type Syntax string

const (
	// SyntaxSCSS is the brace-delimited dialect (.scss).
	SyntaxSCSS Syntax = "scss"
	// SyntaxSass is the indented dialect (.sass).
	SyntaxSass Syntax = "sass"
)

// TemplateExt marks a source that must be rendered before compilation.
const TemplateExt = ".tmpl"

var sourcePattern = regexp.MustCompile(`\.(sass|scss)(\.tmpl)?$`)

// Reference is a logical stylesheet reference: a URL or path with an optional query string.
type Reference struct {
	Raw   string
	Path  string
	Query string
}

// ParseReference splits raw at the first '?' into path and query.
func ParseReference(raw string) Reference {
	path, query, _ := strings.Cut(raw, "?")
	return Reference{Raw: raw, Path: path, Query: query}
}

// MatchSource reports whether path names a preprocessor source, which dialect it uses,
// and whether it carries the templating extension.
func MatchSource(path string) (syntax Syntax, templated bool, ok bool) {
	m := sourcePattern.FindStringSubmatch(path)
	if m == nil {
		return "", false, false
	}
	return Syntax(m[1]), m[2] != "", true
}

// Resolved is a reference mapped onto the filesystem and the cache.
type Resolved struct {
	Reference  Reference
	SourcePath string
	Handle     Handle
	Syntax     Syntax
	Templated  bool
}
