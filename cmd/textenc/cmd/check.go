package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oy3o/textenc"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Check whether text is valid for the selected scheme",
	Long: `Check whether text is valid for the selected scheme and print
"valid" or "invalid".

By default only the character set is checked. With --strict, hex and bin
additionally require a nonzero digit count aligned to the scheme's group
size (two hex digits or eight binary digits per byte).

Example:
  textenc check -s hex "4 1 42"
  textenc check -s bin --strict "01000001"`,
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

		var ok bool
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			sv, hasStrict := c.(textenc.StrictValidator)
			if !hasStrict {
				return fmt.Errorf("scheme %q has no strict validation", c.Name())
			}
			ok = sv.IsValidStrict(text)
		} else {
			ok = c.IsValid(text)
		}

		if ok {
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "also enforce the group-size length invariant")
	rootCmd.AddCommand(checkCmd)
}
