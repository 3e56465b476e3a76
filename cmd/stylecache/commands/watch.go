package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [references...]",
		Short: "Recompile stylesheets when their sources change",
		Long: "Compiles the given references, or every source under the project root when none\n" +
			"are given, and recompiles them whenever a stylesheet source changes.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), args)
		},
	}
}
