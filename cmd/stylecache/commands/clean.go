package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stylecache/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove compiled stylesheets and cache records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return c.app.Clean(cmd.Context(), app.CleanOptions{DryRun: dryRun})
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Report what would be removed")
	return cmd
}
