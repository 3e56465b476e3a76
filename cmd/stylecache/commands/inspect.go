package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stylecache/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <handle>",
		Short: "Show the cache record stored for a handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			css, _ := cmd.Flags().GetBool("css")
			return c.app.Inspect(cmd.Context(), args[0], app.InspectOptions{CSS: css})
		},
	}
	cmd.Flags().Bool("css", false, "Also print the stored compiled CSS")
	return cmd
}
