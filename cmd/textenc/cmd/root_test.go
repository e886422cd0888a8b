package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args and returns its
// stdout. A nonexistent --config path is not passed, so the defaults
// apply unless a test says otherwise.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	t.Run("base64", func(t *testing.T) {
		out, err := execute(t, "encode", "-s", "base64", "hello")
		require.NoError(t, err)
		assert.Equal(t, "aGVsbG8=\n", out)
	})

	t.Run("hex", func(t *testing.T) {
		out, err := execute(t, "encode", "-s", "hex", "AB")
		require.NoError(t, err)
		assert.Equal(t, "41 42\n", out)
	})

	t.Run("bin", func(t *testing.T) {
		out, err := execute(t, "encode", "-s", "bin", "A")
		require.NoError(t, err)
		assert.Equal(t, "01000001\n", out)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := execute(t, "encode", "-s", "rot13", "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown scheme")
	})

	// Runs last: --lower sticks on the flag set for the rest of the
	// process, which only affects hex output case.
	t.Run("hex lowercase", func(t *testing.T) {
		out, err := execute(t, "encode", "-s", "hex", "--lower", "JK")
		require.NoError(t, err)
		assert.Equal(t, "4a 4b\n", out)
	})
}

func TestEncodeFromStdin(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader("hello\n"))
	rootCmd.SetArgs([]string{"encode", "-s", "base64"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "aGVsbG8=\n", out.String())
}

func TestDecodeCommand(t *testing.T) {
	t.Run("base64", func(t *testing.T) {
		out, err := execute(t, "decode", "-s", "base64", "aGVsbG8=")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", out)
	})

	t.Run("hex with spacing", func(t *testing.T) {
		out, err := execute(t, "decode", "-s", "hex", "41 42")
		require.NoError(t, err)
		assert.Equal(t, "AB\n", out)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := execute(t, "decode", "-s", "hex", "4g2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-hex character")
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("loose", func(t *testing.T) {
		out, err := execute(t, "check", "-s", "hex", "414")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("strict rejects odd digit count", func(t *testing.T) {
		out, err := execute(t, "check", "-s", "hex", "--strict", "414")
		require.NoError(t, err)
		assert.Equal(t, "invalid\n", out)
	})

	t.Run("strict unsupported on base64", func(t *testing.T) {
		_, err := execute(t, "check", "-s", "base64", "--strict", "TQ==")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no strict validation")
	})
}

func TestFormatCommand(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		out, err := execute(t, "format", "-s", "hex", "4142")
		require.NoError(t, err)
		assert.Equal(t, "41 42\n", out)
	})

	t.Run("bin", func(t *testing.T) {
		out, err := execute(t, "format", "-s", "bin", "0100000101000010")
		require.NoError(t, err)
		assert.Equal(t, "01000001 01000010\n", out)
	})

	t.Run("unsupported on base64", func(t *testing.T) {
		_, err := execute(t, "format", "-s", "base64", "TQ==")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not support formatting")
	})
}

func TestSchemesCommand(t *testing.T) {
	out, err := execute(t, "schemes")
	require.NoError(t, err)
	for _, name := range []string{"base64", "bin", "hex"} {
		assert.Contains(t, out, name+"\n")
	}
}

func TestConfigFile(t *testing.T) {
	t.Run("default scheme from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, SaveConfig(&Config{Scheme: "hex", Hex: HexConfig{Case: "upper"}}, path))

		// --lower may have been left set by an earlier encode run.
		out, err := execute(t, "encode", "-s", "", "--lower=false", "--config", path, "AB")
		require.NoError(t, err)
		assert.Equal(t, "41 42\n", out)
	})

	t.Run("invalid hex case rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, SaveConfig(&Config{Scheme: "hex", Hex: HexConfig{Case: "mixed"}}, path))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid hex case")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.yaml")
		saved := &Config{Scheme: "bin", Hex: HexConfig{Case: "lower"}}
		require.NoError(t, SaveConfig(saved, path))
		assert.True(t, ConfigExists(path))

		loaded, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})
}
