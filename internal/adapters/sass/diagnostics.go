package sass

import (
	"strings"

	"go.trai.ch/stylecache/internal/core/ports"
)

const (
	warningMarker = "WARNING:"
	debugMarker   = "DEBUG:"
)

// forwardDiagnostics scans preprocessor stderr for warnings and debug output. Indented
// lines following a warning are its context (usually the source location).
func forwardDiagnostics(stderr string, sink ports.DiagnosticsSink) {
	if sink == nil || stderr == "" {
		return
	}

	var (
		warning string
		context []string
		pending bool
	)
	flush := func() {
		if pending {
			sink.Warn(warning, strings.Join(context, "\n"))
		}
		warning, context, pending = "", nil, false
	}

	for line := range strings.SplitSeq(stderr, "\n") {
		switch {
		case strings.Contains(line, warningMarker):
			flush()
			_, msg, _ := strings.Cut(line, warningMarker)
			warning, pending = strings.TrimSpace(msg), true
		case strings.Contains(line, debugMarker):
			flush()
			_, msg, _ := strings.Cut(line, debugMarker)
			sink.Debug(strings.TrimSpace(msg))
		case pending && strings.TrimSpace(line) != "" && strings.TrimLeft(line, " \t") != line:
			context = append(context, strings.TrimSpace(line))
		default:
			flush()
		}
	}
	flush()
}
