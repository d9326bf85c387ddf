package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/cadence/internal/cli"
	"github.com/example/cadence/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     version.AppName,
		Short:   version.AppName + " - project timeline and escalation engine",
		Version: version.String(),
		Long: `cadence tracks client-delivery projects as ordered milestone timelines.
It instantiates projects from templates, drives the milestone workflow,
reschedules deadlines after late completions, and escalates overdue
client-owned milestones.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ClientCmd())
	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.MilestoneCmd())
	rootCmd.AddCommand(cli.TemplateCmd())
	rootCmd.AddCommand(cli.EscalationCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
