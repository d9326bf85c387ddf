package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/wire"
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Manage milestones",
	Long:  "Inspect milestones, drive the status workflow, and reschedule deadlines",
}

var milestoneListCmd = &cobra.Command{
	Use:   "list",
	Short: "List milestones",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, _ := cmd.Flags().GetString("project")
		status, _ := cmd.Flags().GetString("status")
		owner, _ := cmd.Flags().GetString("owner")

		milestones, err := wire.MilestoneService().ListMilestones(context.Background(), primary.MilestoneFilters{
			ProjectID: projectID,
			Status:    status,
			Owner:     owner,
		})
		if err != nil {
			return fmt.Errorf("failed to list milestones: %w", err)
		}

		if len(milestones) == 0 {
			fmt.Println("No milestones found.")
			return nil
		}

		fmt.Printf("Found %d milestone(s):\n\n", len(milestones))
		for _, m := range milestones {
			fmt.Printf("%s %s: %s — due %s [%s, %s]\n",
				getStatusIcon(m.Status), m.ID, m.Title, formatDate(m.DueDate), m.Status, m.Owner)
		}
		return nil
	},
}

var milestoneShowCmd = &cobra.Command{
	Use:   "show [milestone-id]",
	Short: "Show milestone details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := wire.MilestoneService().GetMilestone(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get milestone: %w", err)
		}

		fmt.Printf("Milestone: %s\n", m.ID)
		fmt.Printf("  Project:  %s (step %d)\n", m.ProjectID, m.Order)
		fmt.Printf("  Title:    %s\n", m.Title)
		if m.Description != "" {
			fmt.Printf("  About:    %s\n", m.Description)
		}
		fmt.Printf("  Status:   %s %s\n", getStatusIcon(m.Status), m.Status)
		fmt.Printf("  Owner:    %s\n", m.Owner)
		fmt.Printf("  Due:      %s\n", formatDate(m.DueDate))
		if m.DueDate != m.OriginalDueDate {
			fmt.Printf("  Original: %s\n", formatDate(m.OriginalDueDate))
		}
		if m.SubmittedAt != "" {
			fmt.Printf("  Submitted: %s\n", formatDate(m.SubmittedAt))
		}
		if m.CompletedAt != "" {
			fmt.Printf("  Completed: %s\n", formatDate(m.CompletedAt))
		}
		if m.ActionURL != "" {
			fmt.Printf("  Action:   %s (%s)\n", m.ActionURL, m.ActionLabel)
		}
		return nil
	},
}

var milestoneSetStatusCmd = &cobra.Command{
	Use:   "set-status [milestone-id] [status]",
	Short: "Change a milestone's status",
	Long:  "Set a milestone to locked, open, submitted, in_review, or done.\nEntering done completes the step: it may reschedule later deadlines and unlocks the next step.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := wire.MilestoneService().SetStatus(context.Background(), primary.SetStatusRequest{
			MilestoneID: args[0],
			Status:      args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to set status: %w", err)
		}

		fmt.Printf("✓ %s is now %s\n", resp.Milestone.ID, resp.Milestone.Status)
		if resp.Cascade != nil {
			color.New(color.FgYellow).Printf("  Completed %d day(s) late: %d later milestone(s) rescheduled.\n",
				resp.Cascade.DelayDays, resp.Cascade.ShiftedCount)
		}
		if resp.Unlocked != nil {
			fmt.Printf("  Unlocked next step: %s (%s, due %s)\n",
				resp.Unlocked.ID, resp.Unlocked.Title, formatDate(resp.Unlocked.DueDate))
		}
		return nil
	},
}

var milestoneSubmitCmd = &cobra.Command{
	Use:   "submit [milestone-id]",
	Short: "Record a client submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := wire.MilestoneService().Submit(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to submit milestone: %w", err)
		}
		fmt.Printf("✓ %s submitted on %s, awaiting review\n", m.ID, formatDate(m.SubmittedAt))
		return nil
	},
}

var milestoneCurrentCmd = &cobra.Command{
	Use:   "current [project-id]",
	Short: "Show the project's current step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := wire.MilestoneService().CurrentMilestone(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve current milestone: %w", err)
		}
		fmt.Printf("%s %s: %s — due %s [%s, %s]\n",
			getStatusIcon(m.Status), m.ID, m.Title, formatDate(m.DueDate), m.Status, m.Owner)
		return nil
	},
}

var milestoneCascadeCmd = &cobra.Command{
	Use:   "cascade [project-id]",
	Short: "Manually shift deadlines after a step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromOrder, _ := cmd.Flags().GetInt("from")
		delayDays, _ := cmd.Flags().GetInt("days")

		milestones, err := wire.MilestoneService().CascadeDeadlines(context.Background(), args[0], fromOrder, delayDays)
		if err != nil {
			return fmt.Errorf("failed to cascade deadlines: %w", err)
		}

		fmt.Printf("✓ Rescheduled milestones after step %d by %d day(s):\n", fromOrder, delayDays)
		for _, m := range milestones {
			marker := ""
			if m.DueDate != m.OriginalDueDate {
				marker = color.New(color.FgYellow).Sprintf(" (was %s)", formatDate(m.OriginalDueDate))
			}
			fmt.Printf("  %s %d. %s — due %s%s\n", getStatusIcon(m.Status), m.Order, m.Title, formatDate(m.DueDate), marker)
		}
		return nil
	},
}

func init() {
	milestoneListCmd.Flags().StringP("project", "p", "", "Filter by project")
	milestoneListCmd.Flags().StringP("status", "s", "", "Filter by status")
	milestoneListCmd.Flags().StringP("owner", "o", "", "Filter by owner (agency, client)")

	milestoneCascadeCmd.Flags().Int("from", 0, "Shift milestones after this step order")
	milestoneCascadeCmd.Flags().Int("days", 0, "Number of days to shift forward")

	// Register subcommands
	milestoneCmd.AddCommand(milestoneListCmd)
	milestoneCmd.AddCommand(milestoneShowCmd)
	milestoneCmd.AddCommand(milestoneSetStatusCmd)
	milestoneCmd.AddCommand(milestoneSubmitCmd)
	milestoneCmd.AddCommand(milestoneCurrentCmd)
	milestoneCmd.AddCommand(milestoneCascadeCmd)
}

// MilestoneCmd returns the milestone command
func MilestoneCmd() *cobra.Command {
	return milestoneCmd
}
