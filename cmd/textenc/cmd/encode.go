package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oy3o/textenc/hex"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text with the selected scheme",
	Long: `Encode text with the selected scheme.

Example:
  textenc encode -s hex "AB"
  echo -n hello | textenc encode -s base64`,
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

		out := c.Encode(text)
		if c.Name() == hex.Scheme && hexCase(cmd) == "lower" {
			out = hex.ToLower(out)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// hexCase resolves the hex output case: flags win over the config file.
func hexCase(cmd *cobra.Command) string {
	if lower, _ := cmd.Flags().GetBool("lower"); lower {
		return "lower"
	}
	if upper, _ := cmd.Flags().GetBool("upper"); upper {
		return "upper"
	}
	return cfg.Hex.Case
}

func init() {
	encodeCmd.Flags().Bool("lower", false, "render hex output in lowercase")
	encodeCmd.Flags().Bool("upper", false, "render hex output in uppercase")
	rootCmd.AddCommand(encodeCmd)
}
