package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/cadence/internal/ports/secondary"
)

// MilestoneRepository implements secondary.MilestoneRepository with SQLite.
type MilestoneRepository struct {
	db *sql.DB
}

// NewMilestoneRepository creates a new SQLite milestone repository.
func NewMilestoneRepository(db *sql.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

const milestoneSelectCols = "id, project_id, sequence, title, description, status, owner, category, due_date, original_due_date, action_url, action_label, submitted_at, completed_at"

func scanMilestone(scanner interface {
	Scan(dest ...any) error
}) (*secondary.MilestoneRecord, error) {
	var (
		desc        sql.NullString
		actionURL   sql.NullString
		actionLabel sql.NullString
		dueDate     time.Time
		originalDue time.Time
		submittedAt sql.NullTime
		completedAt sql.NullTime
	)

	record := &secondary.MilestoneRecord{}
	err := scanner.Scan(
		&record.ID, &record.ProjectID, &record.Order, &record.Title, &desc,
		&record.Status, &record.Owner, &record.Category,
		&dueDate, &originalDue, &actionURL, &actionLabel,
		&submittedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.ActionURL = actionURL.String
	record.ActionLabel = actionLabel.String
	record.DueDate = dueDate
	record.OriginalDueDate = originalDue
	if submittedAt.Valid {
		t := submittedAt.Time
		record.SubmittedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		record.CompletedAt = &t
	}
	return record, nil
}

// insertMilestone writes one milestone row inside an open transaction.
// Shared with the project repository's composite instantiation write.
func insertMilestone(ctx context.Context, tx *sql.Tx, m *secondary.MilestoneRecord) error {
	var desc, actionURL, actionLabel sql.NullString
	if m.Description != "" {
		desc = sql.NullString{String: m.Description, Valid: true}
	}
	if m.ActionURL != "" {
		actionURL = sql.NullString{String: m.ActionURL, Valid: true}
	}
	if m.ActionLabel != "" {
		actionLabel = sql.NullString{String: m.ActionLabel, Valid: true}
	}

	_, err := tx.ExecContext(ctx,
		"INSERT INTO milestones (id, project_id, sequence, title, description, status, owner, category, due_date, original_due_date, action_url, action_label) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		m.ID, m.ProjectID, m.Order, m.Title, desc, m.Status, m.Owner, m.Category,
		m.DueDate, m.OriginalDueDate, actionURL, actionLabel,
	)
	if err != nil {
		return fmt.Errorf("failed to create milestone %s: %w", m.ID, err)
	}
	return nil
}

// CreateBatch persists a project's milestones in one transaction.
func (r *MilestoneRepository) CreateBatch(ctx context.Context, milestones []*secondary.MilestoneRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range milestones {
		if err := insertMilestone(ctx, tx, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit milestones: %w", err)
	}
	return nil
}

// GetByID retrieves a milestone by its ID.
func (r *MilestoneRepository) GetByID(ctx context.Context, id string) (*secondary.MilestoneRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+milestoneSelectCols+" FROM milestones WHERE id = ?", id,
	)

	record, err := scanMilestone(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("milestone %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get milestone: %w", err)
	}
	return record, nil
}

// GetByProject retrieves a project's milestones ordered by sequence.
func (r *MilestoneRepository) GetByProject(ctx context.Context, projectID string) ([]*secondary.MilestoneRecord, error) {
	return r.queryMilestones(ctx,
		"SELECT "+milestoneSelectCols+" FROM milestones WHERE project_id = ? ORDER BY sequence ASC",
		projectID,
	)
}

// List retrieves milestones matching the given filters.
func (r *MilestoneRepository) List(ctx context.Context, filters secondary.MilestoneFilters) ([]*secondary.MilestoneRecord, error) {
	query := "SELECT " + milestoneSelectCols + " FROM milestones WHERE 1=1"
	args := []any{}

	if filters.ProjectID != "" {
		query += " AND project_id = ?"
		args = append(args, filters.ProjectID)
	}
	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}
	if filters.Owner != "" {
		query += " AND owner = ?"
		args = append(args, filters.Owner)
	}

	query += " ORDER BY project_id ASC, sequence ASC"

	return r.queryMilestones(ctx, query, args...)
}

func (r *MilestoneRepository) queryMilestones(ctx context.Context, query string, args ...any) ([]*secondary.MilestoneRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query milestones: %w", err)
	}
	defer rows.Close()

	var records []*secondary.MilestoneRecord
	for rows.Next() {
		record, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// UpdateStatus updates the status column only.
func (r *MilestoneRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE milestones SET status = ? WHERE id = ?", status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update milestone status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update milestone status: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("milestone %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// MarkSubmitted sets status to submitted and stamps submitted_at.
func (r *MilestoneRepository) MarkSubmitted(ctx context.Context, id string, submittedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE milestones SET status = 'submitted', submitted_at = ? WHERE id = ?",
		submittedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark milestone submitted: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark milestone submitted: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("milestone %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// ApplyCompletion applies a done-transition and all of its side effects in a
// single transaction: status + completed_at on the completed milestone, the
// cascade's due date shifts, and the unlock of the successor. Readers never
// see a partial completion.
func (r *MilestoneRepository) ApplyCompletion(ctx context.Context, update secondary.CompletionUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE milestones SET status = 'done', completed_at = ? WHERE id = ?",
		update.CompletedAt, update.MilestoneID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete milestone: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to complete milestone: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("milestone %s: %w", update.MilestoneID, secondary.ErrNotFound)
	}

	for _, shift := range update.Shifts {
		_, err := tx.ExecContext(ctx,
			"UPDATE milestones SET due_date = ? WHERE id = ?",
			shift.NewDueDate, shift.MilestoneID,
		)
		if err != nil {
			return fmt.Errorf("failed to shift milestone %s: %w", shift.MilestoneID, err)
		}
	}

	if update.UnlockID != "" {
		_, err := tx.ExecContext(ctx,
			"UPDATE milestones SET status = 'open' WHERE id = ? AND status = 'locked'",
			update.UnlockID,
		)
		if err != nil {
			return fmt.Errorf("failed to unlock milestone %s: %w", update.UnlockID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completion: %w", err)
	}
	return nil
}

// ShiftDueDates applies pre-computed due date shifts in one transaction.
func (r *MilestoneRepository) ShiftDueDates(ctx context.Context, shifts []secondary.DueDateShiftRecord) error {
	if len(shifts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, shift := range shifts {
		_, err := tx.ExecContext(ctx,
			"UPDATE milestones SET due_date = ? WHERE id = ?",
			shift.NewDueDate, shift.MilestoneID,
		)
		if err != nil {
			return fmt.Errorf("failed to shift milestone %s: %w", shift.MilestoneID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shifts: %w", err)
	}
	return nil
}

// Ensure MilestoneRepository implements the interface
var _ secondary.MilestoneRepository = (*MilestoneRepository)(nil)
