package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/cadence/internal/ports/secondary"
)

// InfraTaskRepository implements secondary.InfraTaskRepository with SQLite.
type InfraTaskRepository struct {
	db *sql.DB
}

// NewInfraTaskRepository creates a new SQLite infrastructure task repository.
func NewInfraTaskRepository(db *sql.DB) *InfraTaskRepository {
	return &InfraTaskRepository{db: db}
}

// insertInfraTask writes one checklist row inside an open transaction.
// Shared with the project repository's composite instantiation write.
func insertInfraTask(ctx context.Context, tx *sql.Tx, task *secondary.InfraTaskRecord) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO infrastructure_tasks (id, project_id, title, completed) VALUES (?, ?, ?, ?)",
		task.ID, task.ProjectID, task.Title, task.Completed,
	)
	if err != nil {
		return fmt.Errorf("failed to create infrastructure task %s: %w", task.ID, err)
	}
	return nil
}

// CreateBatch persists a project's infrastructure tasks.
func (r *InfraTaskRepository) CreateBatch(ctx context.Context, tasks []*secondary.InfraTaskRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, task := range tasks {
		if err := insertInfraTask(ctx, tx, task); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit infrastructure tasks: %w", err)
	}
	return nil
}

// GetByProject retrieves a project's infrastructure tasks.
func (r *InfraTaskRepository) GetByProject(ctx context.Context, projectID string) ([]*secondary.InfraTaskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_id, title, completed FROM infrastructure_tasks WHERE project_id = ? ORDER BY id ASC",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list infrastructure tasks: %w", err)
	}
	defer rows.Close()

	var records []*secondary.InfraTaskRecord
	for rows.Next() {
		record := &secondary.InfraTaskRecord{}
		if err := rows.Scan(&record.ID, &record.ProjectID, &record.Title, &record.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan infrastructure task: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// SetCompleted toggles an infrastructure task's completion flag.
func (r *InfraTaskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE infrastructure_tasks SET completed = ? WHERE id = ?", completed, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update infrastructure task: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update infrastructure task: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("infrastructure task %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Ensure InfraTaskRepository implements the interface
var _ secondary.InfraTaskRepository = (*InfraTaskRepository)(nil)
