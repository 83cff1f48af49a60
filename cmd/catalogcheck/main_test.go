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

// row builds a CSV line whose first weight column is "Critical Thinking".
func row(code, degree, special string, critical string) string {
	return code + "," + degree + "," + special + "," + critical + ",0,0,0,0,0,0,0,0,0,0,0"
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.csv")
	data := strings.Join([]string{
		row("BBA", "BBA", "Marketing", "0.2"),
		row("B.Sc", "B.Sc", "Physics", "0.9"),
		row("MBA", "MBA", "Finance", "0.7"),
		row("XYZ", "XYZ", "General", "0.1"),
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats", "--file", writeCatalog(t))
	require.NoError(t, err)

	assert.Contains(t, out, "programs:      4")
	assert.Contains(t, out, "undergraduate: 3")
	assert.Contains(t, out, "postgraduate:  1")
	assert.Contains(t, out, "unknown codes: XYZ")
}

func TestStatsBundledCatalog(t *testing.T) {
	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "undergraduate:")
}

func TestScoutRanksByProfile(t *testing.T) {
	out, err := execute(t, "scout", "--file", writeCatalog(t),
		"--trait", "Critical Thinking=1", "--track", "12", "--top", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "B.Sc - Physics")
	assert.NotContains(t, out, "MBA")
}

func TestScoutRejectsBadInput(t *testing.T) {
	path := writeCatalog(t)

	_, err := execute(t, "scout", "--file", path, "--trait", "Telepathy=1")
	assert.ErrorContains(t, err, "unknown trait")

	_, err = execute(t, "scout", "--file", path, "--trait", "Leadership=2")
	assert.ErrorContains(t, err, "within [0,1]")

	_, err = execute(t, "scout", "--file", path, "--trait", "Leadership")
	assert.ErrorContains(t, err, "Name=value")

	_, err = execute(t, "scout", "--file", path, "--track", "phd")
	assert.ErrorContains(t, err, "invalid track")
}

func TestParseTraits(t *testing.T) {
	profile, err := parseTraits([]string{"Leadership=0.5", " Physics = 1 "})
	require.NoError(t, err)
	assert.Equal(t, 0.5, profile["Leadership"])
	assert.Equal(t, 1.0, profile["Physics"])
}
