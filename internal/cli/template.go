package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/cadence/internal/wire"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Browse project templates",
	Long:  "List the built-in and user-defined milestone templates projects are created from",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := wire.TemplateService().ListTemplates(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}

		for _, t := range templates {
			fmt.Printf("%s: %s (%d milestones, %d infrastructure tasks)\n",
				t.Type, t.Name, len(t.Milestones), len(t.InfrastructureTasks))
		}
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show [type]",
	Short: "Show a template's milestone plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := wire.TemplateService().GetTemplate(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}

		fmt.Printf("Template: %s (%s)\n", t.Name, t.Type)
		if t.Description != "" {
			fmt.Printf("  %s\n", t.Description)
		}
		fmt.Printf("\nMilestones (%d):\n", len(t.Milestones))
		for _, m := range t.Milestones {
			fmt.Printf("  %d. %s — +%d day(s) (%s)\n", m.Order, m.Title, m.DaysOffset, m.Owner)
		}
		if len(t.InfrastructureTasks) > 0 {
			fmt.Printf("\nInfrastructure checklist (%d):\n", len(t.InfrastructureTasks))
			for _, task := range t.InfrastructureTasks {
				fmt.Printf("  ☐ %s\n", task)
			}
		}
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
}

// TemplateCmd returns the template command
func TemplateCmd() *cobra.Command {
	return templateCmd
}
