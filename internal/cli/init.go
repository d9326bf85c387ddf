package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/cadence/internal/config"
	"github.com/example/cadence/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the cadence database",
		Long:  `Initialize the cadence database at ~/.cadence/cadence.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			fmt.Printf("Initializing cadence database at %s\n", cfg.DBPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Println("✓ Database initialized successfully")

			// Persist the resolved config so the defaults are visible and
			// editable.
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Println("✓ Configuration written to ~/.cadence/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  cadence client create \"Acme GmbH\" --email hello@acme.example")
			fmt.Println("  cadence project create \"Acme Website\" --client CLIENT-001 --type website --start 2026-09-01")

			return nil
		},
	}
}
