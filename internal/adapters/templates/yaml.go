package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/cadence/internal/ports/secondary"
)

// templateFile is the YAML shape of a user-edited template.
type templateFile struct {
	Type                string          `yaml:"type"`
	Name                string          `yaml:"name"`
	Description         string          `yaml:"description"`
	Milestones          []blueprintFile `yaml:"milestones"`
	InfrastructureTasks []string        `yaml:"infrastructure_tasks"`
}

type blueprintFile struct {
	Order       int    `yaml:"order"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Owner       string `yaml:"owner"`
	Category    string `yaml:"category"`
	DaysOffset  int    `yaml:"days_offset"`
	ActionURL   string `yaml:"action_url"`
	ActionLabel string `yaml:"action_label"`
}

// loadDir parses every *.yaml / *.yml file in dir into a template record.
// A missing directory yields no templates.
func loadDir(dir string) ([]*secondary.TemplateRecord, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read templates dir: %w", err)
	}

	var templates []*secondary.TemplateRecord
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}

		var file templateFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
		if file.Type == "" {
			return nil, fmt.Errorf("template %s has no type", entry.Name())
		}

		templates = append(templates, fileToRecord(&file))
	}
	return templates, nil
}

func fileToRecord(file *templateFile) *secondary.TemplateRecord {
	record := &secondary.TemplateRecord{
		Type:                file.Type,
		Name:                file.Name,
		Description:         file.Description,
		InfrastructureTasks: file.InfrastructureTasks,
	}
	for _, m := range file.Milestones {
		record.Milestones = append(record.Milestones, secondary.BlueprintRecord{
			Order:       m.Order,
			Title:       m.Title,
			Description: m.Description,
			Owner:       m.Owner,
			Category:    m.Category,
			DaysOffset:  m.DaysOffset,
			ActionURL:   m.ActionURL,
			ActionLabel: m.ActionLabel,
		})
	}
	return record
}
