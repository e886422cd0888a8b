package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oy3o/textenc"
)

// schemesCmd represents the schemes command
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the registered encoding schemes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range textenc.Schemes() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(schemesCmd)
}
