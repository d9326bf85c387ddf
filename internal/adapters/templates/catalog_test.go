package templates

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/cadence/internal/ports/secondary"
)

func TestCatalogBuiltins(t *testing.T) {
	catalog := NewCatalog("")
	ctx := context.Background()

	tests := []struct {
		projectType    string
		wantMilestones int
	}{
		{projectType: "landingpage", wantMilestones: 7},
		{projectType: "website", wantMilestones: 8},
		{projectType: "software", wantMilestones: 9},
	}

	for _, tt := range tests {
		t.Run(tt.projectType, func(t *testing.T) {
			tmpl, err := catalog.GetByType(ctx, tt.projectType)
			if err != nil {
				t.Fatalf("GetByType(%q) error = %v", tt.projectType, err)
			}
			if len(tmpl.Milestones) != tt.wantMilestones {
				t.Errorf("got %d milestones, want %d", len(tmpl.Milestones), tt.wantMilestones)
			}
			if len(tmpl.InfrastructureTasks) == 0 {
				t.Error("template has no infrastructure tasks")
			}
			// Every built-in sequence starts on the project start date.
			if tmpl.Milestones[0].DaysOffset != 0 {
				t.Errorf("first blueprint offset = %d, want 0", tmpl.Milestones[0].DaysOffset)
			}
			for i, m := range tmpl.Milestones {
				if m.Order != i+1 {
					t.Errorf("blueprint %d has order %d", i, m.Order)
				}
				if m.Owner != "agency" && m.Owner != "client" {
					t.Errorf("blueprint %d has owner %q", i, m.Owner)
				}
			}
		})
	}
}

func TestCatalogUnknownType(t *testing.T) {
	catalog := NewCatalog("")

	_, err := catalog.GetByType(context.Background(), "app")
	if !errors.Is(err, secondary.ErrTemplateNotFound) {
		t.Errorf("GetByType(\"app\") = %v, want wrapping ErrTemplateNotFound", err)
	}
}

func TestCatalogListSorted(t *testing.T) {
	catalog := NewCatalog("")

	all, err := catalog.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d templates, want 3", len(all))
	}
	if all[0].Type != "landingpage" || all[1].Type != "software" || all[2].Type != "website" {
		t.Errorf("unexpected order: %s, %s, %s", all[0].Type, all[1].Type, all[2].Type)
	}
}

func TestCatalogMissingDirUsesBuiltins(t *testing.T) {
	catalog := NewCatalog(filepath.Join(t.TempDir(), "does-not-exist"))

	all, err := catalog.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d templates, want 3 builtins", len(all))
	}
}

func TestCatalogYAMLOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	content := `type: landingpage
name: Express Landingpage
description: Two week express delivery.
milestones:
  - order: 1
    title: Kickoff
    owner: agency
    category: onboarding
    days_offset: 0
  - order: 2
    title: Content
    owner: client
    category: content
    days_offset: 3
    action_url: https://drive.google.com
    action_label: Open folder
infrastructure_tasks:
  - Domain purchased
`
	if err := os.WriteFile(filepath.Join(dir, "landingpage.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	catalog := NewCatalog(dir)
	tmpl, err := catalog.GetByType(context.Background(), "landingpage")
	if err != nil {
		t.Fatalf("GetByType() error = %v", err)
	}

	if tmpl.Name != "Express Landingpage" {
		t.Errorf("Name = %q, want the YAML override", tmpl.Name)
	}
	if len(tmpl.Milestones) != 2 {
		t.Fatalf("got %d milestones, want 2", len(tmpl.Milestones))
	}
	if tmpl.Milestones[1].DaysOffset != 3 || tmpl.Milestones[1].ActionLabel != "Open folder" {
		t.Errorf("blueprint = %+v", tmpl.Milestones[1])
	}
}

func TestCatalogYAMLNewType(t *testing.T) {
	dir := t.TempDir()
	content := `type: shop
name: Online Shop
milestones:
  - order: 1
    title: Kickoff
    owner: agency
    category: onboarding
    days_offset: 0
`
	if err := os.WriteFile(filepath.Join(dir, "shop.yml"), []byte(content), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	catalog := NewCatalog(dir)
	all, err := catalog.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("got %d templates, want 4 (3 builtins + shop)", len(all))
	}
}

func TestCatalogRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(":\n  - ["), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	catalog := NewCatalog(dir)
	if _, err := catalog.List(context.Background()); err == nil {
		t.Error("List() with malformed YAML = nil error, want error")
	}
}

func TestCatalogRejectsTemplateWithoutType(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "untyped.yaml"), []byte("name: No Type\n"), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	catalog := NewCatalog(dir)
	if _, err := catalog.List(context.Background()); err == nil {
		t.Error("List() with untyped template = nil error, want error")
	}
}
