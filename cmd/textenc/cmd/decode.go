package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode encoded text back to UTF-8",
	Long: `Decode encoded text back to UTF-8.

Example:
  textenc decode -s hex "41 42"
  textenc decode -s base64 "aGVsbG8="`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveCodec(cmd)
		if err != nil {
			return err
		}
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		out, err := c.Decode(text)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
