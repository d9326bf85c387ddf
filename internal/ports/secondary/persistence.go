// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is wrapped by repositories when an id does not exist.
// Services surface it instead of silently no-opping on unknown ids.
var ErrNotFound = errors.New("not found")

// ClientRepository defines the secondary port for client persistence.
type ClientRepository interface {
	// Create persists a new client.
	Create(ctx context.Context, client *ClientRecord) error

	// GetByID retrieves a client by its ID.
	GetByID(ctx context.Context, id string) (*ClientRecord, error)

	// List retrieves all clients ordered by creation time.
	List(ctx context.Context) ([]*ClientRecord, error)

	// Update updates a client's contact details.
	Update(ctx context.Context, client *ClientRecord) error

	// Delete removes a client from persistence.
	Delete(ctx context.Context, id string) error

	// Exists checks whether a client exists (for validation).
	Exists(ctx context.Context, id string) (bool, error)

	// GetNextID returns the next available client ID.
	GetNextID(ctx context.Context) (string, error)
}

// ClientRecord represents a client as stored in persistence.
type ClientRecord struct {
	ID        string
	Name      string
	Email     string
	Phone     string // Empty string means null
	CreatedAt time.Time
}

// ProjectRepository defines the secondary port for project persistence.
type ProjectRepository interface {
	// Create persists a new project.
	Create(ctx context.Context, project *ProjectRecord) error

	// CreateWithTimeline persists a project together with its milestones
	// and infrastructure tasks as one atomic unit. A failed instantiation
	// must leave no trace of the project behind.
	CreateWithTimeline(ctx context.Context, project *ProjectRecord, milestones []*MilestoneRecord, tasks []*InfraTaskRecord) error

	// GetByID retrieves a project by its ID.
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)

	// List retrieves projects matching the given filters.
	List(ctx context.Context, filters ProjectFilters) ([]*ProjectRecord, error)

	// SetCascadePolicy toggles the deadline cascade flag.
	SetCascadePolicy(ctx context.Context, id string, enabled bool) error

	// Delete removes a project and its dependents from persistence.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available project ID.
	GetNextID(ctx context.Context) (string, error)
}

// ProjectRecord represents a project as stored in persistence.
type ProjectRecord struct {
	ID                   string
	ClientID             string
	Title                string
	Type                 string // landingpage, website, software, custom
	CascadePolicyEnabled bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ProjectFilters contains filter options for querying projects.
type ProjectFilters struct {
	ClientID string
	Type     string
}

// MilestoneRepository defines the secondary port for milestone persistence.
type MilestoneRepository interface {
	// CreateBatch persists a project's milestones in one transaction.
	CreateBatch(ctx context.Context, milestones []*MilestoneRecord) error

	// GetByID retrieves a milestone by its ID.
	GetByID(ctx context.Context, id string) (*MilestoneRecord, error)

	// GetByProject retrieves a project's milestones ordered by sequence.
	GetByProject(ctx context.Context, projectID string) ([]*MilestoneRecord, error)

	// List retrieves milestones matching the given filters.
	List(ctx context.Context, filters MilestoneFilters) ([]*MilestoneRecord, error)

	// UpdateStatus updates the status column only.
	UpdateStatus(ctx context.Context, id string, status string) error

	// MarkSubmitted sets status to submitted and stamps submitted_at.
	MarkSubmitted(ctx context.Context, id string, submittedAt time.Time) error

	// ApplyCompletion applies a completion and all of its side effects
	// (done status + completed_at stamp, cascade shifts, unlock of the
	// successor) in a single transaction. A concurrent reader never
	// observes a partial completion.
	ApplyCompletion(ctx context.Context, update CompletionUpdate) error

	// ShiftDueDates applies pre-computed due date shifts in one transaction.
	// Original due dates are never written.
	ShiftDueDates(ctx context.Context, shifts []DueDateShiftRecord) error
}

// MilestoneRecord represents a milestone as stored in persistence.
type MilestoneRecord struct {
	ID              string
	ProjectID       string
	Order           int
	Title           string
	Description     string
	Status          string // locked, open, submitted, in_review, done
	Owner           string // agency, client
	Category        string
	DueDate         time.Time
	OriginalDueDate time.Time
	ActionURL       string     // Empty string means null
	ActionLabel     string     // Empty string means null
	SubmittedAt     *time.Time // Nil means never submitted
	CompletedAt     *time.Time // Nil means not completed
}

// MilestoneFilters contains filter options for querying milestones.
type MilestoneFilters struct {
	ProjectID string
	Status    string
	Owner     string
}

// DueDateShiftRecord is one milestone's rescheduled due date.
type DueDateShiftRecord struct {
	MilestoneID string
	NewDueDate  time.Time
}

// CompletionUpdate is the full set of changes a done-transition produces.
type CompletionUpdate struct {
	MilestoneID string
	CompletedAt time.Time
	Shifts      []DueDateShiftRecord // Cascade, empty when not triggered
	UnlockID    string               // Successor to open, empty when none
}

// InfraTaskRepository defines the secondary port for infrastructure task
// persistence.
type InfraTaskRepository interface {
	// CreateBatch persists a project's infrastructure tasks.
	CreateBatch(ctx context.Context, tasks []*InfraTaskRecord) error

	// GetByProject retrieves a project's infrastructure tasks.
	GetByProject(ctx context.Context, projectID string) ([]*InfraTaskRecord, error)

	// SetCompleted toggles an infrastructure task's completion flag.
	SetCompleted(ctx context.Context, id string, completed bool) error
}

// InfraTaskRecord represents an infrastructure checklist item as stored in
// persistence.
type InfraTaskRecord struct {
	ID        string
	ProjectID string
	Title     string
	Completed bool
}

// ActivityLogRepository defines the secondary port for the append-only
// per-project activity log.
type ActivityLogRepository interface {
	// Append writes one activity entry.
	Append(ctx context.Context, entry *ActivityRecord) error

	// GetByProject retrieves a project's activity, newest first, capped at
	// limit (0 means no cap).
	GetByProject(ctx context.Context, projectID string, limit int) ([]*ActivityRecord, error)
}

// ActivityRecord represents one activity log entry as stored in persistence.
type ActivityRecord struct {
	ID        int64 // Assigned by the store
	ProjectID string
	Type      string // project_created, milestone_status_changed, ...
	Message   string
	Timestamp time.Time
}
