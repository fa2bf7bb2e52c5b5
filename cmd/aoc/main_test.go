package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/engineparts/aoc"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	for _, name := range []string{"day3", "day3b"} {
		require.NoError(t, aoc.CheckSample(name), name)
	}
}

func TestCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "3.input")
	require.NoError(t, os.WriteFile(path, []byte("12\n..*\n34\n"), 0644))

	for _, tt := range []struct {
		day  string
		want string
	}{
		{"3", "46\n"},
		{"3b", "408\n"},
		{"day3b", "408\n"},
	} {
		var out bytes.Buffer
		cmd := aoc.NewCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--day", tt.day, "--input", path})
		require.NoError(t, cmd.Execute(), tt.day)
		require.Equal(t, tt.want, out.String(), tt.day)
	}
}

func TestCommandUnknownDay(t *testing.T) {
	cmd := aoc.NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--day", "25"})
	require.ErrorContains(t, cmd.Execute(), "day25 not registered")
}

func TestCommandMissingInput(t *testing.T) {
	cmd := aoc.NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--day", "3", "--skip-sample", "--input", filepath.Join(t.TempDir(), "nope")})
	require.ErrorIs(t, cmd.Execute(), os.ErrNotExist)
}
