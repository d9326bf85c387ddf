// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/cadence/internal/ports/secondary"
)

// ClientRepository implements secondary.ClientRepository with SQLite.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new SQLite client repository.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientSelectCols = "id, name, email, phone, created_at"

func scanClient(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ClientRecord, error) {
	var (
		phone     sql.NullString
		createdAt time.Time
	)

	record := &secondary.ClientRecord{}
	err := scanner.Scan(&record.ID, &record.Name, &record.Email, &phone, &createdAt)
	if err != nil {
		return nil, err
	}

	record.Phone = phone.String
	record.CreatedAt = createdAt
	return record, nil
}

// Create persists a new client.
func (r *ClientRepository) Create(ctx context.Context, client *secondary.ClientRecord) error {
	var phone sql.NullString
	if client.Phone != "" {
		phone = sql.NullString{String: client.Phone, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO clients (id, name, email, phone) VALUES (?, ?, ?, ?)",
		client.ID, client.Name, client.Email, phone,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetByID retrieves a client by its ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*secondary.ClientRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+clientSelectCols+" FROM clients WHERE id = ?", id,
	)

	record, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("client %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return record, nil
}

// List retrieves all clients ordered by creation time.
func (r *ClientRepository) List(ctx context.Context) ([]*secondary.ClientRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+clientSelectCols+" FROM clients ORDER BY created_at ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ClientRecord
	for rows.Next() {
		record, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Update updates a client's contact details.
func (r *ClientRepository) Update(ctx context.Context, client *secondary.ClientRecord) error {
	var phone sql.NullString
	if client.Phone != "" {
		phone = sql.NullString{String: client.Phone, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE clients SET name = ?, email = ?, phone = ? WHERE id = ?",
		client.Name, client.Email, phone, client.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("client %s: %w", client.ID, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a client from persistence.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("client %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Exists checks whether a client exists.
func (r *ClientRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE id = ?", id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check client existence: %w", err)
	}
	return count > 0, nil
}

// GetNextID returns the next available client ID.
func (r *ClientRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 8) AS INTEGER)), 0) FROM clients",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next client ID: %w", err)
	}
	return fmt.Sprintf("CLIENT-%03d", maxID+1), nil
}

// Ensure ClientRepository implements the interface
var _ secondary.ClientRepository = (*ClientRepository)(nil)
