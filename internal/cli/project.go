package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/wire"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  "Create projects from templates, inspect their timeline, and tune per-project policy",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new project from a template",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		clientID, _ := cmd.Flags().GetString("client")
		projectType, _ := cmd.Flags().GetString("type")
		start, _ := cmd.Flags().GetString("start")
		blueprintsPath, _ := cmd.Flags().GetString("blueprints")

		if clientID == "" {
			return fmt.Errorf("a client is required\nHint: pass --client CLIENT-001")
		}
		startDate, err := parseDate(start)
		if err != nil {
			return fmt.Errorf("invalid start date %q: expected yyyy-mm-dd", start)
		}

		var blueprints []primary.CustomBlueprint
		if blueprintsPath != "" {
			blueprints, err = loadBlueprintFile(blueprintsPath)
			if err != nil {
				return err
			}
		}

		resp, err := wire.ProjectService().CreateProject(ctx, primary.CreateProjectRequest{
			ClientID:   clientID,
			Title:      args[0],
			Type:       projectType,
			StartDate:  startDate,
			Blueprints: blueprints,
		})
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		fmt.Printf("✓ Created project %s: %s [%s]\n", resp.Project.ID, resp.Project.Title, resp.Project.Type)
		fmt.Printf("  Milestones (%d):\n", len(resp.Milestones))
		for _, m := range resp.Milestones {
			fmt.Printf("  %s %d. %s — due %s (%s)\n", getStatusIcon(m.Status), m.Order, m.Title, formatDate(m.DueDate), m.Owner)
		}
		if len(resp.InfrastructureTasks) > 0 {
			fmt.Printf("  Infrastructure (%d):\n", len(resp.InfrastructureTasks))
			for _, task := range resp.InfrastructureTasks {
				fmt.Printf("  ☐ %s: %s\n", task.ID, task.Title)
			}
		}
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client")
		projectType, _ := cmd.Flags().GetString("type")

		projects, err := wire.ProjectService().ListProjects(context.Background(), primary.ProjectFilters{
			ClientID: clientID,
			Type:     projectType,
		})
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		fmt.Printf("Found %d project(s):\n\n", len(projects))
		for _, p := range projects {
			cascade := ""
			if !p.CascadePolicyEnabled {
				cascade = color.New(color.FgYellow).Sprint(" [cascade off]")
			}
			fmt.Printf("%s: %s [%s] (client %s)%s\n", p.ID, p.Title, p.Type, p.ClientID, cascade)
		}
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a project's timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		project, err := wire.ProjectService().GetProject(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get project: %w", err)
		}

		fmt.Printf("Project: %s\n", project.ID)
		fmt.Printf("  Title:   %s\n", project.Title)
		fmt.Printf("  Type:    %s\n", project.Type)
		fmt.Printf("  Client:  %s\n", project.ClientID)
		fmt.Printf("  Cascade: %v\n", project.CascadePolicyEnabled)

		milestones, err := wire.MilestoneService().ListMilestones(ctx, primary.MilestoneFilters{ProjectID: project.ID})
		if err != nil {
			return fmt.Errorf("failed to list milestones: %w", err)
		}

		fmt.Printf("\nTimeline (%d milestones):\n", len(milestones))
		for _, m := range milestones {
			shifted := ""
			if m.DueDate != m.OriginalDueDate {
				shifted = color.New(color.FgYellow).Sprintf(" (shifted from %s)", formatDate(m.OriginalDueDate))
			}
			fmt.Printf("  %s %d. %s — due %s%s [%s, %s]\n",
				getStatusIcon(m.Status), m.Order, m.Title, formatDate(m.DueDate), shifted, m.Status, m.Owner)
		}
		return nil
	},
}

var projectSetCascadeCmd = &cobra.Command{
	Use:   "set-cascade [project-id] [on|off]",
	Short: "Toggle the deadline cascade for a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[1] {
		case "on":
			enabled = true
		case "off":
			enabled = false
		default:
			return fmt.Errorf("expected on or off, got %q", args[1])
		}

		if err := wire.ProjectService().SetCascadePolicy(context.Background(), args[0], enabled); err != nil {
			return fmt.Errorf("failed to set cascade policy: %w", err)
		}
		fmt.Printf("✓ Deadline cascade for %s is now %s\n", args[0], args[1])
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project-id]",
	Short: "Remove a project and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.ProjectService().DeleteProject(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		fmt.Printf("✓ Deleted project %s\n", args[0])
		return nil
	},
}

var projectInfraCmd = &cobra.Command{
	Use:   "infra [project-id]",
	Short: "Show the infrastructure checklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		complete, _ := cmd.Flags().GetString("complete")
		reopen, _ := cmd.Flags().GetString("reopen")

		if complete != "" {
			if err := wire.ProjectService().CompleteInfrastructureTask(ctx, complete, true); err != nil {
				return fmt.Errorf("failed to complete task: %w", err)
			}
			fmt.Printf("✓ Completed %s\n", complete)
		}
		if reopen != "" {
			if err := wire.ProjectService().CompleteInfrastructureTask(ctx, reopen, false); err != nil {
				return fmt.Errorf("failed to reopen task: %w", err)
			}
			fmt.Printf("✓ Reopened %s\n", reopen)
		}

		tasks, err := wire.ProjectService().GetInfrastructureTasks(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to list infrastructure tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No infrastructure tasks.")
			return nil
		}
		for _, task := range tasks {
			box := "☐"
			if task.Completed {
				box = "☑"
			}
			fmt.Printf("%s %s: %s\n", box, task.ID, task.Title)
		}
		return nil
	},
}

var projectLogCmd = &cobra.Command{
	Use:   "log [project-id]",
	Short: "Show a project's activity, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		entries, err := wire.ProjectService().GetActivity(context.Background(), args[0], limit)
		if err != nil {
			return fmt.Errorf("failed to read activity log: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No activity yet.")
			return nil
		}
		for _, entry := range entries {
			fmt.Printf("%s  [%s] %s\n", formatDate(entry.Timestamp), entry.Type, entry.Message)
		}
		return nil
	},
}

// loadBlueprintFile parses a YAML milestone plan for custom projects. The
// file uses the same milestone schema as the template files.
func loadBlueprintFile(path string) ([]primary.CustomBlueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint file: %w", err)
	}

	var file struct {
		Milestones []struct {
			Order       int    `yaml:"order"`
			Title       string `yaml:"title"`
			Description string `yaml:"description"`
			Owner       string `yaml:"owner"`
			Category    string `yaml:"category"`
			DaysOffset  int    `yaml:"days_offset"`
			ActionURL   string `yaml:"action_url"`
			ActionLabel string `yaml:"action_label"`
		} `yaml:"milestones"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse blueprint file: %w", err)
	}

	blueprints := make([]primary.CustomBlueprint, len(file.Milestones))
	for i, m := range file.Milestones {
		blueprints[i] = primary.CustomBlueprint{
			Order:       m.Order,
			Title:       m.Title,
			Description: m.Description,
			Owner:       m.Owner,
			Category:    m.Category,
			DaysOffset:  m.DaysOffset,
			ActionURL:   m.ActionURL,
			ActionLabel: m.ActionLabel,
		}
	}
	return blueprints, nil
}

func init() {
	projectCreateCmd.Flags().StringP("client", "c", "", "Owning client ID (required)")
	projectCreateCmd.Flags().StringP("type", "t", "website", "Project type (landingpage, website, software, custom)")
	projectCreateCmd.Flags().StringP("start", "s", "", "Start date as yyyy-mm-dd (required)")
	projectCreateCmd.Flags().String("blueprints", "", "YAML milestone plan for custom projects")

	projectListCmd.Flags().StringP("client", "c", "", "Filter by client")
	projectListCmd.Flags().StringP("type", "t", "", "Filter by type")

	projectInfraCmd.Flags().String("complete", "", "Mark a task ID as completed")
	projectInfraCmd.Flags().String("reopen", "", "Mark a task ID as incomplete again")

	projectLogCmd.Flags().IntP("limit", "n", 20, "Maximum number of entries (0 for all)")

	// Register subcommands
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectSetCascadeCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectInfraCmd)
	projectCmd.AddCommand(projectLogCmd)
}

// ProjectCmd returns the project command
func ProjectCmd() *cobra.Command {
	return projectCmd
}
