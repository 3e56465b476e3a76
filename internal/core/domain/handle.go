package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Handle is the sanitized cache key of a stylesheet; it names the artifact and its record.
type Handle string

func (h Handle) String() string {
	return string(h)
}

// SanitizeHandle lowercases s and drops every character outside [a-z0-9_-].
func SanitizeHandle(s string) Handle {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return Handle(b.String())
}

// HandleFromURL derives a handle from a stylesheet URL: the basename of its path with
// ".sass" removed and slashes turned into dashes, then sanitized.
//
// Distinct references with the same basename share a handle. QualifiedHandle avoids that.
func HandleFromURL(raw string) Handle {
	p := ParseReference(raw).Path
	if u, err := url.Parse(p); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(p)
	base = strings.ReplaceAll(base, ".sass", "")
	base = strings.ReplaceAll(base, "/", "-")
	return SanitizeHandle(base)
}

// QualifiedHandle appends a hash of the full reference path to h, so references that
// only share a basename get separate cache slots.
func QualifiedHandle(h Handle, ref Reference) Handle {
	return Handle(fmt.Sprintf("%s-%016x", h, xxhash.Sum64String(ref.Path)))
}
