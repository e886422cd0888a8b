package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oy3o/textenc"
	_ "github.com/oy3o/textenc/base64"
	_ "github.com/oy3o/textenc/bin"
	_ "github.com/oy3o/textenc/hex"
)

// cfg holds the active configuration. PersistentPreRunE replaces it when
// a config file is present; flags still override individual values.
var cfg = DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "textenc",
	Short: "Convert text between base64, hex and binary representations",
	Long: `textenc encodes, decodes, validates and formats text in the
base64, hex and bin schemes.

Input is taken from the first argument, or from stdin when no argument
is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = DefaultConfigPath()
			if !ConfigExists(path) {
				return nil
			}
		}
		loaded, err := LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("scheme", "s", "", "encoding scheme ("+strings.Join(textenc.Schemes(), ", ")+")")
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
}

// resolveCodec picks the codec named by the --scheme flag, falling back
// to the configured default scheme.
func resolveCodec(cmd *cobra.Command) (textenc.Codec, error) {
	name, _ := cmd.Flags().GetString("scheme")
	if name == "" {
		name = cfg.Scheme
	}
	return textenc.Lookup(name)
}

// readInput returns the argument if present, otherwise all of stdin with
// a single trailing newline stripped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
