package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/ports/secondary"
	"github.com/example/cadence/internal/wire"
)

var escalationCmd = &cobra.Command{
	Use:   "escalation",
	Short: "Evaluate overdue client milestones",
	Long:  "Classify overdue client-owned milestones into reminder, urgent, and critical tiers",
}

var escalationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List current escalations",
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := wire.EscalationService().Evaluate(context.Background())
		if err != nil {
			return fmt.Errorf("failed to evaluate escalations: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No overdue client milestones.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LEVEL\tMILESTONE\tPROJECT\tCLIENT\tOVERDUE\tSUBJECT")
		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dd\t%s\n",
				levelLabel(e.Level, e.Label), e.MilestoneID, e.ProjectID, e.ClientID, e.DaysOverdue, e.Subject)
		}
		return w.Flush()
	},
}

var escalationStatusCmd = &cobra.Command{
	Use:   "status [milestone-id]",
	Short: "Show one milestone's escalation tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := wire.EscalationService().Status(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to compute escalation status: %w", err)
		}

		if status.Level == 0 {
			fmt.Printf("%s is not escalated.\n", status.MilestoneID)
			return nil
		}
		fmt.Printf("%s: %s (level %d, %d day(s) overdue)\n",
			status.MilestoneID, levelLabel(status.Level, status.Label), status.Level, status.DaysOverdue)
		return nil
	},
}

var escalationWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate escalations on an interval",
	Long:  "Periodically re-evaluate every project and deliver the resulting notices.\nRuns until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetInt("interval")
		if interval <= 0 {
			interval = wire.Config().WatchIntervalSeconds
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Watching escalations every %ds (ctrl-c to stop)\n", interval)
		ticker := time.NewTicker(time.Duration(interval) * time.Second)
		defer ticker.Stop()

		// Evaluate once up front, then on every tick.
		if err := deliverEscalations(ctx, wire.EscalationService(), wire.Notifier()); err != nil {
			return err
		}
		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nStopped.")
				return nil
			case <-ticker.C:
				if err := deliverEscalations(ctx, wire.EscalationService(), wire.Notifier()); err != nil {
					return err
				}
			}
		}
	},
}

// deliverEscalations runs one evaluation cycle and hands every event to the
// given notifier.
func deliverEscalations(ctx context.Context, service primary.EscalationService, notifier secondary.Notifier) error {
	events, err := service.Evaluate(ctx)
	if err != nil {
		return fmt.Errorf("failed to evaluate escalations: %w", err)
	}

	for _, e := range events {
		timestamp, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil {
			return fmt.Errorf("bad escalation timestamp for %s: %w", e.MilestoneID, err)
		}
		notice := &secondary.EscalationNotice{
			MilestoneID:   e.MilestoneID,
			ProjectID:     e.ProjectID,
			ClientID:      e.ClientID,
			Level:         e.Level,
			DaysOverdue:   e.DaysOverdue,
			Subject:       e.Subject,
			Body:          e.Body,
			InternalAlert: e.InternalAlert,
			Timestamp:     timestamp,
		}
		if err := notifier.Deliver(ctx, notice); err != nil {
			return fmt.Errorf("failed to deliver escalation for %s: %w", e.MilestoneID, err)
		}
	}
	return nil
}

// levelLabel colors a tier label by severity.
func levelLabel(level int, label string) string {
	switch level {
	case 3:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case 2:
		return color.New(color.FgYellow).Sprint(label)
	case 1:
		return color.New(color.FgCyan).Sprint(label)
	default:
		return label
	}
}

func init() {
	escalationWatchCmd.Flags().IntP("interval", "i", 0, "Seconds between evaluations (default from config)")

	// Register subcommands
	escalationCmd.AddCommand(escalationListCmd)
	escalationCmd.AddCommand(escalationStatusCmd)
	escalationCmd.AddCommand(escalationWatchCmd)
}

// EscalationCmd returns the escalation command
func EscalationCmd() *cobra.Command {
	return escalationCmd
}
