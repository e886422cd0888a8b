package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oy3o/textenc"
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format [text]",
	Short: "Insert byte-boundary spacing into hex or binary text",
	Long: `Clean hex or binary text and re-render it with a space between
bytes.

Example:
  textenc format -s hex "4142"
  textenc format -s bin "0100000101000010"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveCodec(cmd)
		if err != nil {
			return err
		}
		f, ok := c.(textenc.Formatter)
		if !ok {
			return fmt.Errorf("scheme %q does not support formatting", c.Name())
		}
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		out, err := f.Format(text)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
