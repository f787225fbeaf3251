package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resource-client/resourceservice"
)

var (
	listLimit  int
	listFilter string
)

// listCmd lists resources, optionally filtered and limited.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources",
	Long: `List resources from the upstream API.

A fresh local snapshot answers without a network call, applying the filter
and limit locally. A stale snapshot is refreshed from the upstream first.

Examples:
  resourcectl list
  resourcectl list --limit 10 --filter report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := buildContainer()
		if err != nil {
			return err
		}

		resources, err := container.Resources().List(context.Background(), resourceservice.ListOptions{
			Limit:  listLimit,
			Filter: listFilter,
		})
		if err != nil {
			return err
		}

		if len(resources) == 0 {
			fmt.Println("No resources found.")
			return nil
		}

		fmt.Printf("\n%-38s  %-30s  %-10s  %s\n", "ID", "NAME", "TYPE", "UPDATED")
		fmt.Println(strings.Repeat("-", 100))
		for _, r := range resources {
			fmt.Printf("%-38s  %-30s  %-10s  %s\n",
				r.ID,
				r.Data.Name,
				r.Data.Type,
				r.UpdatedAt.Format("2006-01-02 15:04:05"),
			)
		}
		fmt.Printf("\nTotal: %d resource(s)\n", len(resources))
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of resources (0 = no limit)")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "keep only resources whose name contains this substring")
	rootCmd.AddCommand(listCmd)
}
