package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/camview/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		r := styles.NewVersionRenderer(styles.NewTheme())
		fmt.Fprintln(cmd.OutOrStdout(), r.Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
