package app

import (
	"fmt"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/engine/compiler"
	"go.trai.ch/stylecache/internal/ui/style"
)

// report prints one line describing what happened to ref.
func (a *App) report(ref string, res compiler.Result, err error) {
	var line string
	switch {
	case err != nil:
		line = style.Failed.Render(fmt.Sprintf("%s %-8s", style.Cross, domain.OutcomeFailed)) + " " + ref
	case res.Outcome == domain.OutcomeSkipped:
		line = style.Skipped.Render(fmt.Sprintf("%s %-8s", style.Skip, res.Outcome)) + " " + ref
	case res.Outcome == domain.OutcomeCompiled:
		line = style.Compiled.Render(fmt.Sprintf("%s %-8s", style.Check, res.Outcome)) +
			fmt.Sprintf(" %s %s %s", ref, style.Arrow, res.URL)
	default:
		line = style.Cached.Render(fmt.Sprintf("%s %-8s", style.Check, res.Outcome)) +
			fmt.Sprintf(" %s %s %s", ref, style.Arrow, res.URL)
	}
	_, _ = fmt.Fprintln(a.out, line)
}
