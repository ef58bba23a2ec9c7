package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mydehq/stampname/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
