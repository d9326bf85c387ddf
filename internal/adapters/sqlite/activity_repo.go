package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/cadence/internal/ports/secondary"
)

// ActivityLogRepository implements secondary.ActivityLogRepository with SQLite.
type ActivityLogRepository struct {
	db *sql.DB
}

// NewActivityLogRepository creates a new SQLite activity log repository.
func NewActivityLogRepository(db *sql.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append writes one activity entry.
func (r *ActivityLogRepository) Append(ctx context.Context, entry *secondary.ActivityRecord) error {
	timestamp := entry.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO activity_log (project_id, type, message, timestamp) VALUES (?, ?, ?, ?)",
		entry.ProjectID, entry.Type, entry.Message, timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

// GetByProject retrieves a project's activity, newest first.
func (r *ActivityLogRepository) GetByProject(ctx context.Context, projectID string, limit int) ([]*secondary.ActivityRecord, error) {
	query := "SELECT id, project_id, type, message, timestamp FROM activity_log WHERE project_id = ? ORDER BY timestamp DESC, id DESC"
	args := []any{projectID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ActivityRecord
	for rows.Next() {
		var timestamp time.Time
		record := &secondary.ActivityRecord{}
		if err := rows.Scan(&record.ID, &record.ProjectID, &record.Type, &record.Message, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		record.Timestamp = timestamp
		records = append(records, record)
	}
	return records, rows.Err()
}

// Ensure ActivityLogRepository implements the interface
var _ secondary.ActivityLogRepository = (*ActivityLogRepository)(nil)
