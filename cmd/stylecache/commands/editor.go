package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newEditorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "editor <list>",
		Short: "Rewrite a comma separated editor stylesheet list",
		Long: "Compiles every preprocessor stylesheet in the comma separated list and prints the\n" +
			"list with each entry replaced by its cached URL. Other entries and failed entries\n" +
			"are kept as given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Editor(cmd.Context(), args[0])
		},
	}
}
