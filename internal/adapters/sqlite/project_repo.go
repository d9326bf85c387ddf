package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/cadence/internal/ports/secondary"
)

// ProjectRepository implements secondary.ProjectRepository with SQLite.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new SQLite project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectSelectCols = "id, client_id, title, type, cascade_policy_enabled, created_at, updated_at"

func scanProject(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ProjectRecord, error) {
	var createdAt, updatedAt time.Time

	record := &secondary.ProjectRecord{}
	err := scanner.Scan(
		&record.ID, &record.ClientID, &record.Title, &record.Type,
		&record.CascadePolicyEnabled, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt
	return record, nil
}

// Create persists a new project.
func (r *ProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, client_id, title, type, cascade_policy_enabled) VALUES (?, ?, ?, ?, ?)",
		project.ID, project.ClientID, project.Title, project.Type, project.CascadePolicyEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// CreateWithTimeline persists a project together with its milestones and
// infrastructure tasks in a single transaction. A failed instantiation
// leaves no project row behind.
func (r *ProjectRepository) CreateWithTimeline(ctx context.Context, project *secondary.ProjectRecord, milestones []*secondary.MilestoneRecord, tasks []*secondary.InfraTaskRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO projects (id, client_id, title, type, cascade_policy_enabled) VALUES (?, ?, ?, ?, ?)",
		project.ID, project.ClientID, project.Title, project.Type, project.CascadePolicyEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	for _, m := range milestones {
		if err := insertMilestone(ctx, tx, m); err != nil {
			return err
		}
	}
	for _, task := range tasks {
		if err := insertInfraTask(ctx, tx, task); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project: %w", err)
	}
	return nil
}

// GetByID retrieves a project by its ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+projectSelectCols+" FROM projects WHERE id = ?", id,
	)

	record, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return record, nil
}

// List retrieves projects matching the given filters.
func (r *ProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	query := "SELECT " + projectSelectCols + " FROM projects WHERE 1=1"
	args := []any{}

	if filters.ClientID != "" {
		query += " AND client_id = ?"
		args = append(args, filters.ClientID)
	}
	if filters.Type != "" {
		query += " AND type = ?"
		args = append(args, filters.Type)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ProjectRecord
	for rows.Next() {
		record, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// SetCascadePolicy toggles the deadline cascade flag.
func (r *ProjectRepository) SetCascadePolicy(ctx context.Context, id string, enabled bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE projects SET cascade_policy_enabled = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		enabled, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set cascade policy: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set cascade policy: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a project. Milestones, infrastructure tasks and activity
// entries go with it via ON DELETE CASCADE.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// GetNextID returns the next available project ID.
func (r *ProjectRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM projects",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next project ID: %w", err)
	}
	return fmt.Sprintf("PROJ-%03d", maxID+1), nil
}

// Ensure ProjectRepository implements the interface
var _ secondary.ProjectRepository = (*ProjectRepository)(nil)
