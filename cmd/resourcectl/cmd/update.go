package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	updateID          string
	updateName        string
	updateDescription string
	updateData        []string
	updateMetadata    []string
)

// updateCmd updates an existing resource.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a resource",
	Long: `Update an existing resource.

The current resource is fetched first, the given fields are applied on top
and the result replaces the upstream copy in full.

Example:
  resourcectl update --id res-123 --name "Q3 Report (final)" --data content="final text"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := parsePairs(updateData)
		if err != nil {
			return fmt.Errorf("--data: %w", err)
		}
		metadata, err := parsePairs(updateMetadata)
		if err != nil {
			return fmt.Errorf("--metadata: %w", err)
		}

		container, err := buildContainer()
		if err != nil {
			return err
		}

		ctx := context.Background()
		resource, err := container.Resources().Get(ctx, updateID)
		if err != nil {
			return err
		}

		if updateName != "" {
			resource.Data.Name = updateName
		}
		if updateDescription != "" {
			resource.Data.Description = updateDescription
		}
		for k, v := range data {
			resource.Data = resource.Data.WithData(k, v)
		}
		for k, v := range metadata {
			resource.Data = resource.Data.WithMetadata(k, v)
		}
		resource.Touch()

		updated, err := container.Resources().Update(ctx, updateID, resource)
		if err != nil {
			return err
		}

		fmt.Printf("Updated resource %s (%s)\n", updated.ID, updated.Data.Name)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateID, "id", "", "resource ID (required)")
	updateCmd.Flags().StringVar(&updateName, "name", "", "new resource name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new resource description")
	updateCmd.Flags().StringArrayVar(&updateData, "data", nil, "data entry as key=value (repeatable)")
	updateCmd.Flags().StringArrayVar(&updateMetadata, "metadata", nil, "metadata entry as key=value (repeatable)")
	updateCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(updateCmd)
}
