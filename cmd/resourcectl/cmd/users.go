package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var usersShowID string

// usersCmd groups the user directory commands.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "User directory commands",
	Long: `Commands for inspecting the user directory.

Lookups go through a read-through cache, so repeated calls within the
cache TTL do not hit the upstream API.

Examples:
  resourcectl users list
  resourcectl users show --id usr-123`,
}

// usersListCmd lists all known users.
var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := buildContainer()
		if err != nil {
			return err
		}

		roster, err := container.Users().Roster(context.Background())
		if err != nil {
			return err
		}

		if len(roster) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		fmt.Printf("\n%-38s  %-20s  %-30s  %s\n", "ID", "NAME", "EMAIL", "ROLE")
		fmt.Println(strings.Repeat("-", 100))
		for _, u := range roster {
			fmt.Printf("%-38s  %-20s  %-30s  %s\n", u.ID, u.Name, u.Email, u.Role)
		}
		fmt.Printf("\nTotal: %d user(s)\n", len(roster))
		return nil
	},
}

// usersShowCmd shows a single user with effective permissions.
var usersShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a user and their effective permissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := buildContainer()
		if err != nil {
			return err
		}

		user, err := container.Users().User(context.Background(), usersShowID)
		if err != nil {
			return err
		}

		fmt.Printf("ID:    %s\n", user.ID)
		fmt.Printf("Name:  %s\n", user.Name)
		fmt.Printf("Email: %s\n", user.Email)
		fmt.Printf("Role:  %s\n", user.Role)

		perms := user.EffectivePermissions()
		names := make([]string, 0, len(perms))
		for p := range perms {
			names = append(names, string(p))
		}
		sort.Strings(names)

		fmt.Println("Permissions:")
		for _, name := range names {
			fmt.Printf("  - %s\n", name)
		}
		return nil
	},
}

func init() {
	usersShowCmd.Flags().StringVar(&usersShowID, "id", "", "user ID (required)")
	usersShowCmd.MarkFlagRequired("id")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersShowCmd)
	rootCmd.AddCommand(usersCmd)
}
