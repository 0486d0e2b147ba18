package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/github-datacite/internal/action"
	"github.com/pdiddy/github-datacite/internal/cite"
)

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Run as a GitHub Actions step",
	Long: `Action reads the repository reference from the INPUT_* environment
variables the Actions runner provides, generates the document, prints it
to stdout, and publishes it as the step output "` + action.OutputName + `"
when GITHUB_OUTPUT is set.`,
	RunE: runAction,
}

func init() {
	rootCmd.AddCommand(actionCmd)
}

func runAction(cmd *cobra.Command, args []string) error {
	req, err := action.RequestFromEnv(os.Getenv)
	if err != nil {
		return err
	}

	doc, err := cite.FromRequest(req).Generate(cmd.Context(), req.Identity())
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, doc)

	if path := os.Getenv("GITHUB_OUTPUT"); path != "" {
		if err := action.WriteOutput(path, action.OutputName, doc); err != nil {
			return err
		}
	}
	return nil
}
