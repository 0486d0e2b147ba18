// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package action adapts the engine to the GitHub Actions runtime: inputs
// arrive as INPUT_* environment variables and results are appended to
// the file named by GITHUB_OUTPUT using the multiline heredoc framing.
package action

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/github-datacite/pkg/types"
)

// OutputName is the step output the generated document is published under.
const OutputName = "datacitexml"

const outputDelimiter = "GHDATACITE_EOF"

// RequestFromEnv assembles a GenerateRequest from the action's input
// variables. getenv is injectable so tests do not mutate the process
// environment.
func RequestFromEnv(getenv func(string) string) (types.GenerateRequest, error) {
	req := types.GenerateRequest{
		RepoOwner:    getenv("INPUT_REPOOWNER"),
		RepoName:     getenv("INPUT_REPONAME"),
		APIToken:     getenv("INPUT_APITOKEN"),
		GitHubURL:    getenv("INPUT_GITHUBURL"),
		GitHubAPIURL: getenv("INPUT_GITHUBAPIURL"),
	}
	if req.RepoOwner == "" || req.RepoName == "" {
		return types.GenerateRequest{}, fmt.Errorf("INPUT_REPOOWNER and INPUT_REPONAME are required")
	}
	req.ApplyDefaults()
	return req, nil
}

// WriteOutput appends one step output to the GITHUB_OUTPUT file in the
// name<<DELIM / value / DELIM form the runner expects for multiline values.
func WriteOutput(path, name, value string) error {
	if strings.Contains(value, outputDelimiter) {
		return fmt.Errorf("output value must not contain the delimiter %q", outputDelimiter)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, outputDelimiter, value, outputDelimiter); err != nil {
		return fmt.Errorf("writing output %s: %w", name, err)
	}
	return nil
}
