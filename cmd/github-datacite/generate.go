package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/github-datacite/internal/cite"
	"github.com/pdiddy/github-datacite/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [OWNER NAME]",
	Short: "Generate a DataCite document for one repository or a batch",
	Long: `Generate fetches a repository's public state and writes the derived
DataCite XML to stdout or a file. With --batch, a YAML file listing
repositories is processed instead and one document is written per
repository into --out-dir.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("token", "", "GitHub API token (default: .secrets/github-token)")
	generateCmd.Flags().String("github-url", "", "base URL of the GitHub web instance")
	generateCmd.Flags().String("github-api-url", "", "base URL of the GitHub REST API")
	generateCmd.Flags().StringP("output", "o", "", "write the document to this file instead of stdout")
	generateCmd.Flags().String("batch", "", "YAML file listing repositories to process")
	generateCmd.Flags().String("out-dir", ".", "directory for batch output files")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	githubURL, _ := cmd.Flags().GetString("github-url")
	githubAPIURL, _ := cmd.Flags().GetString("github-api-url")
	batch, _ := cmd.Flags().GetString("batch")

	base := types.GenerateRequest{
		APIToken:     flagOrSecret(token, "github-token"),
		GitHubURL:    githubURL,
		GitHubAPIURL: githubAPIURL,
	}

	if batch != "" {
		if len(args) != 0 {
			return fmt.Errorf("--batch cannot be combined with OWNER NAME arguments")
		}
		outDir, _ := cmd.Flags().GetString("out-dir")
		return runBatch(cmd, base, batch, outDir)
	}

	if len(args) != 2 {
		return fmt.Errorf("provide OWNER and NAME, or use --batch")
	}
	base.RepoOwner = args[0]
	base.RepoName = args[1]
	base.ApplyDefaults()

	doc, err := cite.FromRequest(base).Generate(cmd.Context(), base.Identity())
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Fprint(os.Stdout, doc)
		return nil
	}
	if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
	return nil
}

// runBatch generates one document per repository listed in the batch
// file. A failed repository does not stop the rest; the command reports
// the failure count at the end.
func runBatch(cmd *cobra.Command, base types.GenerateRequest, path, outDir string) error {
	bf, err := cite.ReadBatchFile(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	failed := 0
	for _, id := range bf.Repositories {
		req := base
		req.RepoOwner = id.Owner
		req.RepoName = id.Name
		req.ApplyDefaults()

		doc, err := cite.FromRequest(req).Generate(cmd.Context(), id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", id.String(), err)
			failed++
			continue
		}

		out := filepath.Join(outDir, fmt.Sprintf("%s-%s.xml", id.Owner, id.Name))
		if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "  %s -> %s\n", id.String(), out)
	}

	if failed > 0 {
		return fmt.Errorf("%d repositor(ies) failed", failed)
	}
	return nil
}
