package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteID string

// deleteCmd deletes a resource by ID.
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a resource by ID",
	Long: `Delete a resource by ID.

Example:
  resourcectl delete --id res-123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := buildContainer()
		if err != nil {
			return err
		}

		deleted, err := container.Resources().Delete(context.Background(), deleteID)
		if err != nil {
			return err
		}

		if deleted {
			fmt.Printf("Deleted resource %s\n", deleteID)
		} else {
			fmt.Printf("Resource %s was not deleted\n", deleteID)
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "resource ID (required)")
	deleteCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(deleteCmd)
}
