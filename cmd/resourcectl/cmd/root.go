// Package cmd contains the CLI commands for resourcectl.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-resource-client/pkg/config"
	"github.com/goliatone/go-resource-client/pkg/di"
)

var (
	// Global flags. Flags override the config file, which overrides the
	// environment.
	configPath string
	apiURL     string
	apiKey     string
	logFormat  string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "resourcectl",
	Short: "resourcectl - manage resources through the upstream API",
	Long: `resourcectl is a command-line client for the resource API.

It manages resources (documents, users, projects, settings, media) through
the upstream REST API with local snapshot caching, and can mirror the
resource list into a local SQLite database.

Configuration is read from RESOURCE_* environment variables, optionally
overridden by a YAML file (--config) and by flags.

Examples:
  # List resources
  resourcectl list --limit 10

  # Fetch a single resource
  resourcectl fetch --id res-123

  # Create a document
  resourcectl create --name "Q3 Report" --type document --data content="draft"

  # Mirror the upstream list into a local database
  resourcectl sync --db resources.db`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the resource API")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key for bearer authentication")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// loadConfig builds the effective configuration: environment, then file,
// then flags.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildContainer wires the shared components from the effective
// configuration.
func buildContainer() (*di.Container, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return di.New(cfg, nil)
}
