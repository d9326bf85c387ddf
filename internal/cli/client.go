// Package cli contains the cobra commands that drive the primary ports.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/wire"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
	Long:  "Register, list, update, and remove the clients projects belong to",
}

var clientCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Register a new client",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")

		client, err := wire.ClientService().CreateClient(ctx, primary.CreateClientRequest{
			Name:  args[0],
			Email: email,
			Phone: phone,
		})
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		fmt.Printf("✓ Created client %s: %s\n", client.ID, client.Name)
		return nil
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := wire.ClientService().ListClients(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		if len(clients) == 0 {
			fmt.Println("No clients found.")
			return nil
		}

		fmt.Printf("Found %d client(s):\n\n", len(clients))
		for _, client := range clients {
			fmt.Printf("%s: %s <%s>\n", client.ID, client.Name, client.Email)
			if client.Phone != "" {
				fmt.Printf("   Phone: %s\n", client.Phone)
			}
		}
		return nil
	},
}

var clientShowCmd = &cobra.Command{
	Use:   "show [client-id]",
	Short: "Show client details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, err := wire.ClientService().GetClient(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get client: %w", err)
		}

		fmt.Printf("Client: %s\n", client.ID)
		fmt.Printf("  Name:    %s\n", client.Name)
		fmt.Printf("  Email:   %s\n", client.Email)
		if client.Phone != "" {
			fmt.Printf("  Phone:   %s\n", client.Phone)
		}
		fmt.Printf("  Created: %s\n", formatDate(client.CreatedAt))

		projects, err := wire.ProjectService().ListProjects(ctx, primary.ProjectFilters{ClientID: client.ID})
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}
		if len(projects) > 0 {
			fmt.Printf("\nProjects (%d):\n", len(projects))
			for _, p := range projects {
				fmt.Printf("  %s: %s [%s]\n", p.ID, p.Title, p.Type)
			}
		}
		return nil
	},
}

var clientUpdateCmd = &cobra.Command{
	Use:   "update [client-id]",
	Short: "Update a client's contact details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")

		if name == "" && email == "" && phone == "" {
			return fmt.Errorf("nothing to update: pass --name, --email, or --phone")
		}

		err := wire.ClientService().UpdateClient(context.Background(), primary.UpdateClientRequest{
			ClientID: args[0],
			Name:     name,
			Email:    email,
			Phone:    phone,
		})
		if err != nil {
			return fmt.Errorf("failed to update client: %w", err)
		}

		fmt.Printf("✓ Updated client %s\n", args[0])
		return nil
	},
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete [client-id]",
	Short: "Remove a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.ClientService().DeleteClient(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}
		fmt.Printf("✓ Deleted client %s\n", args[0])
		return nil
	},
}

func init() {
	clientCreateCmd.Flags().StringP("email", "e", "", "Contact email (required)")
	clientCreateCmd.Flags().StringP("phone", "p", "", "Contact phone")

	clientUpdateCmd.Flags().String("name", "", "New name")
	clientUpdateCmd.Flags().StringP("email", "e", "", "New email")
	clientUpdateCmd.Flags().StringP("phone", "p", "", "New phone")

	// Register subcommands
	clientCmd.AddCommand(clientCreateCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientShowCmd)
	clientCmd.AddCommand(clientUpdateCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}

// ClientCmd returns the client command
func ClientCmd() *cobra.Command {
	return clientCmd
}
