package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stylecache/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [references...]",
		Short: "Compile stylesheets and print their cached URLs",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if len(args) == 0 && !all {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			handle, _ := cmd.Flags().GetString("handle")
			htmlDiagnostics, _ := cmd.Flags().GetBool("html-diagnostics")

			return c.app.Compile(cmd.Context(), args, app.CompileOptions{
				All:             all,
				Handle:          handle,
				HTMLDiagnostics: htmlDiagnostics,
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Compile every stylesheet source under the project root")
	cmd.Flags().String("handle", "", "Cache handle to use instead of deriving one (single reference only)")
	cmd.Flags().Bool("html-diagnostics", false, "Print preprocessor warnings as inline HTML")
	return cmd
}
