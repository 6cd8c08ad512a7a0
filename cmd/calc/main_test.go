package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp runs the app with the given stdin and arguments and returns its
// stdout, stderr, and error.
func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"calc"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRunArgs(t *testing.T) {
	out, _, err := runApp(t, "", "2*(3+7)", "sqrt(16)")
	require.NoError(t, err)
	assert.Equal(t, "20\n4\n", out)
}

func TestRunFlags(t *testing.T) {
	out, _, err := runApp(t, "", "--degrees", "--fmt", "%.3f", "sin(30)")
	require.NoError(t, err)
	assert.Equal(t, "0.500\n", out)
}

func TestRunStdin(t *testing.T) {
	out, _, err := runApp(t, "1 +\n2\n")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = runApp(t, "1+1\n\n2*3\n", "-n")
	require.NoError(t, err)
	assert.Equal(t, "2\n6\n", out)
}

func TestRunInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("fact(5)\ncomb(5,2)\n"), 0644))
	out, _, err := runApp(t, "", "--lines", "--in", path, "1/2")
	require.NoError(t, err)
	assert.Equal(t, "120\n10\n0.5\n", out)

	_, _, err = runApp(t, "", "--in", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.toml")
	require.NoError(t, os.WriteFile(path, []byte("angle = \"degrees\"\nformat = \"%.1f\"\n"), 0644))
	out, _, err := runApp(t, "", "--config", path, "cos(180)")
	require.NoError(t, err)
	assert.Equal(t, "-1.0\n", out)

	// Flags override the file.
	out, _, err = runApp(t, "", "--config", path, "--fmt", "%g", "--degrees=false", "cos(0)")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, _, err = runApp(t, "", "--log-level", "verbose", "1")
	assert.Error(t, err)
}

func TestRunErrors(t *testing.T) {
	out, logs, err := runApp(t, "", "2 $ 3", "1+1")
	require.EqualError(t, err, "1 of 2 expressions failed")
	assert.Equal(t, "index 2: unexpected character '$' after end of expression\n2\n", out)
	assert.Contains(t, logs, "evaluation failed")
}

func TestRunDebugLog(t *testing.T) {
	_, logs, err := runApp(t, "", "--log-level", "debug", "2+2")
	require.NoError(t, err)
	assert.Contains(t, logs, "evaluated")
	assert.Contains(t, logs, "2+2")

	_, logs, err = runApp(t, "", "2+2")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
