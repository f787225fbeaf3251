package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resource-client/resourceservice"
	"github.com/goliatone/go-resource-client/store"
)

var syncDBPath string

// syncCmd mirrors the upstream resource list into a local SQLite database.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the upstream resource list into a local database",
	Long: `Mirror the upstream resource list into a local SQLite database.

The upstream list is fetched in full and upserted into the database, so
repeated syncs keep the local copy current without duplicating records.

Example:
  resourcectl sync --db resources.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := buildContainer()
		if err != nil {
			return err
		}

		ctx := context.Background()

		// Bypass the snapshot so the sync always reflects the upstream.
		container.Resources().Invalidate()
		resources, err := container.Resources().List(ctx, resourceservice.ListOptions{})
		if err != nil {
			return err
		}

		db, err := store.Open(ctx, syncDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.SaveAll(ctx, resources); err != nil {
			return err
		}

		count, err := db.Count(ctx)
		if err != nil {
			return err
		}

		container.Logger().Info("sync complete",
			"fetched", len(resources),
			"stored", count,
			"db", syncDBPath)
		fmt.Printf("Synced %d resource(s) into %s\n", len(resources), syncDBPath)
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncDBPath, "db", "resources.db", "path to the SQLite database")
	rootCmd.AddCommand(syncCmd)
}
