package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Options:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidSource(t *testing.T) {
	t.Parallel()

	// Nodes outside the demo graph are rejected during config validation.
	args := []string{"-source", "42"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.Error(t, err)
	require.Contains(t, err.Error(), "source must name one of the demo graph's nodes")
}

func TestRun_PrintsShortestPath(t *testing.T) {
	t.Parallel()

	args := []string{"-source", "1", "-target", "5", "-log-level", "error"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err)
	require.Contains(t, out.String(), "topological order: [1 3 2 4]")
	require.Contains(t, out.String(), "shortest path 1 -> 5: 1 -> 3 -> 6 -> 5 (distance 20)")
}
