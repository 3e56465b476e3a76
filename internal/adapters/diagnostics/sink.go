// Package diagnostics implements the sinks that receive preprocessor warnings and
// debug output.
package diagnostics

import (
	"fmt"
	"html"
	"io"
	"sync"

	"go.trai.ch/stylecache/internal/core/ports"
)

var (
	_ ports.DiagnosticsSink = (*LogSink)(nil)
	_ ports.DiagnosticsSink = (*HTMLSink)(nil)
)

// LogSink forwards diagnostics to the logger.
type LogSink struct {
	logger ports.Logger
	source string
}

// NewLogSink creates a sink that tags every entry with source.
func NewLogSink(logger ports.Logger, source string) *LogSink {
	return &LogSink{logger: logger, source: source}
}

// Warn logs a preprocessor warning.
func (s *LogSink) Warn(message, context string) {
	if context == "" {
		s.logger.Warn(message, "source", s.source)
		return
	}
	s.logger.Warn(message, "source", s.source, "context", context)
}

// Debug logs preprocessor debug output.
func (s *LogSink) Debug(message string) {
	s.logger.Debug(message, "source", s.source)
}

// HTMLSink renders diagnostics as inline HTML paragraphs, for hosts that show them in
// the page being built.
type HTMLSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHTMLSink creates a sink writing to w.
func NewHTMLSink(w io.Writer) *HTMLSink {
	return &HTMLSink{w: w}
}

// Warn writes a warning paragraph.
func (s *HTMLSink) Warn(message, context string) {
	text := message
	if context != "" {
		text += " " + context
	}
	s.write("warn", "WARN", text)
}

// Debug writes a debug paragraph.
func (s *HTMLSink) Debug(message string) {
	s.write("debug", "DEBUG", message)
}

func (s *HTMLSink) write(class, label, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.w, "<p class='%s'>%s : %s</p>\n", class, label, html.EscapeString(text))
}

// Multi fans diagnostics out to several sinks.
type Multi []ports.DiagnosticsSink

// Warn forwards to every sink.
func (m Multi) Warn(message, context string) {
	for _, s := range m {
		s.Warn(message, context)
	}
}

// Debug forwards to every sink.
func (m Multi) Debug(message string) {
	for _, s := range m {
		s.Debug(message)
	}
}
