package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var fetchID string

// fetchCmd fetches a single resource by ID.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a single resource by ID",
	Long: `Fetch a single resource by ID.

A fresh local snapshot answers without a network call; otherwise the
upstream API is queried directly.

Example:
  resourcectl fetch --id res-123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := buildContainer()
		if err != nil {
			return err
		}

		resource, err := container.Resources().Get(context.Background(), fetchID)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resource)
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchID, "id", "", "resource ID (required)")
	fetchCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(fetchCmd)
}
