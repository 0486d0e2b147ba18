// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the github-datacite CLI.
// The same engine is reachable three ways: the generate subcommand for
// one-off or batch runs, serve for the REST endpoint, and action for
// execution inside a GitHub Actions step.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/github-datacite/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// flagOrSecret returns value when the flag was set, falling back to the
// named secret from .secrets/ otherwise.
func flagOrSecret(value, key string) string {
	if value != "" {
		return value
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the github-datacite CLI.
var rootCmd = &cobra.Command{
	Use:   "github-datacite",
	Short: "Derive DataCite metadata from GitHub repositories",
	Long: `github-datacite reads the public state of a GitHub repository and maps it
to a DataCite kernel 4.5 metadata document: contributors become creators,
topics become subjects, the fork chain becomes related identifiers, and the
highest semantic-version tag becomes the version.

Generate documents directly with the generate subcommand, run the REST
endpoint with serve, or use the action subcommand inside a GitHub Actions
workflow step.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./github-datacite.yaml or ~/.config/github-datacite/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("github-datacite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "github-datacite"))
		}
	}

	viper.SetEnvPrefix("GITHUB_DATACITE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
