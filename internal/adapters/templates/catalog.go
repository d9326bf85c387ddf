// Package templates serves the project template catalog: the built-in
// milestone sequences per project type, optionally overridden or extended by
// user-edited YAML files.
package templates

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/cadence/internal/ports/secondary"
)

// Catalog implements secondary.TemplateCatalog. User files in dir take
// precedence over built-ins of the same type; dir may be empty or missing.
type Catalog struct {
	dir string
}

// NewCatalog creates a catalog backed by the built-in templates plus any
// YAML templates found in dir.
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// GetByType retrieves the template for a project type.
func (c *Catalog) GetByType(ctx context.Context, projectType string) (*secondary.TemplateRecord, error) {
	all, err := c.load()
	if err != nil {
		return nil, err
	}
	if tmpl, ok := all[projectType]; ok {
		return tmpl, nil
	}
	return nil, fmt.Errorf("no template for project type %q: %w", projectType, secondary.ErrTemplateNotFound)
}

// List retrieves all available templates, sorted by type.
func (c *Catalog) List(ctx context.Context) ([]*secondary.TemplateRecord, error) {
	all, err := c.load()
	if err != nil {
		return nil, err
	}

	types := make([]string, 0, len(all))
	for t := range all {
		types = append(types, t)
	}
	sort.Strings(types)

	result := make([]*secondary.TemplateRecord, 0, len(types))
	for _, t := range types {
		result = append(result, all[t])
	}
	return result, nil
}

func (c *Catalog) load() (map[string]*secondary.TemplateRecord, error) {
	all := make(map[string]*secondary.TemplateRecord, len(builtinTemplates))
	for _, tmpl := range builtinTemplates {
		all[tmpl.Type] = tmpl
	}

	if c.dir != "" {
		userTemplates, err := loadDir(c.dir)
		if err != nil {
			return nil, err
		}
		for _, tmpl := range userTemplates {
			all[tmpl.Type] = tmpl
		}
	}

	return all, nil
}

// Ensure Catalog implements the interface
var _ secondary.TemplateCatalog = (*Catalog)(nil)
