package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resource-client/idgen"
	"github.com/goliatone/go-resource-client/model"
)

var (
	createName        string
	createType        string
	createDescription string
	createOwner       string
	createData        []string
	createMetadata    []string
)

// createCmd creates a new resource.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a resource",
	Long: `Create a resource through the upstream API.

The payload is validated and run through the processor pipeline before
submission. Documents require a content entry; user resources require a
well-formed email entry.

Examples:
  resourcectl create --name "Q3 Report" --type document --data content="draft text"
  resourcectl create --name "Alice" --type user --data email=alice@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, ok := model.ParseResourceType(createType)
		if !ok {
			return fmt.Errorf("unknown resource type %q", createType)
		}
		data, err := parsePairs(createData)
		if err != nil {
			return fmt.Errorf("--data: %w", err)
		}
		metadata, err := parsePairs(createMetadata)
		if err != nil {
			return fmt.Errorf("--metadata: %w", err)
		}

		resourceData := model.NewResourceData(createName, rt).
			WithDescription(createDescription)
		for k, v := range data {
			resourceData = resourceData.WithData(k, v)
		}
		for k, v := range metadata {
			resourceData = resourceData.WithMetadata(k, v)
		}

		resource := model.NewResource(idgen.UUID(), resourceData)
		if createOwner != "" {
			resource = resource.WithOwner(createOwner)
		}

		container, err := buildContainer()
		if err != nil {
			return err
		}

		created, err := container.Resources().Create(context.Background(), resource)
		if err != nil {
			return err
		}

		fmt.Printf("Created resource %s (%s)\n", created.ID, created.Data.Name)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "resource name (required)")
	createCmd.Flags().StringVar(&createType, "type", "document", "resource type (document, user, project, settings, media)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "resource description")
	createCmd.Flags().StringVar(&createOwner, "owner", "", "owner user ID")
	createCmd.Flags().StringArrayVar(&createData, "data", nil, "data entry as key=value (repeatable)")
	createCmd.Flags().StringArrayVar(&createMetadata, "metadata", nil, "metadata entry as key=value (repeatable)")
	createCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(createCmd)
}
