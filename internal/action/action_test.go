// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package action

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFromEnv(t *testing.T) {
	env := map[string]string{
		"INPUT_REPOOWNER": "octo",
		"INPUT_REPONAME":  "spoon",
		"INPUT_APITOKEN":  "tok",
	}
	req, err := RequestFromEnv(func(k string) string { return env[k] })
	require.NoError(t, err)

	assert.Equal(t, "octo", req.RepoOwner)
	assert.Equal(t, "spoon", req.RepoName)
	assert.Equal(t, "tok", req.APIToken)
	// Unset endpoint inputs fall back to the public instance.
	assert.Equal(t, "https://api.github.com", req.GitHubAPIURL)
	assert.Equal(t, "https://github.com", req.GitHubURL)
}

func TestRequestFromEnvMissingRepo(t *testing.T) {
	_, err := RequestFromEnv(func(string) string { return "" })
	assert.ErrorContains(t, err, "INPUT_REPOOWNER")
}

func TestWriteOutputHeredocFraming(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")

	require.NoError(t, WriteOutput(path, OutputName, "<resource>\n  <identifier/>\n</resource>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"datacitexml<<GHDATACITE_EOF\n<resource>\n  <identifier/>\n</resource>\nGHDATACITE_EOF\n",
		string(data))
}

func TestWriteOutputAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")

	require.NoError(t, WriteOutput(path, "first", "a"))
	require.NoError(t, WriteOutput(path, "second", "b"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first<<")
	assert.Contains(t, string(data), "second<<")
}

func TestWriteOutputRejectsDelimiterCollision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	err := WriteOutput(path, "x", "sneaky\nGHDATACITE_EOF\ninjected=1")
	assert.Error(t, err)
}
