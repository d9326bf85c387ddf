package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/example/cadence/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockClientRepository implements secondary.ClientRepository for testing.
type mockClientRepository struct {
	clients   map[string]*secondary.ClientRecord
	createErr error
	nextID    int
}

func newMockClientRepository() *mockClientRepository {
	return &mockClientRepository{clients: make(map[string]*secondary.ClientRecord)}
}

func (m *mockClientRepository) Create(ctx context.Context, client *secondary.ClientRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id string) (*secondary.ClientRecord, error) {
	if client, ok := m.clients[id]; ok {
		return client, nil
	}
	return nil, fmt.Errorf("client %s: %w", id, secondary.ErrNotFound)
}

func (m *mockClientRepository) List(ctx context.Context) ([]*secondary.ClientRecord, error) {
	var result []*secondary.ClientRecord
	for _, c := range m.clients {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockClientRepository) Update(ctx context.Context, client *secondary.ClientRecord) error {
	existing, ok := m.clients[client.ID]
	if !ok {
		return fmt.Errorf("client %s: %w", client.ID, secondary.ErrNotFound)
	}
	if client.Name != "" {
		existing.Name = client.Name
	}
	if client.Email != "" {
		existing.Email = client.Email
	}
	if client.Phone != "" {
		existing.Phone = client.Phone
	}
	return nil
}

func (m *mockClientRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.clients[id]; !ok {
		return fmt.Errorf("client %s: %w", id, secondary.ErrNotFound)
	}
	delete(m.clients, id)
	return nil
}

func (m *mockClientRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.clients[id]
	return ok, nil
}

func (m *mockClientRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("CLIENT-%03d", m.nextID), nil
}

// mockProjectRepository implements secondary.ProjectRepository for testing.
// The milestone and infra sibling mocks stand in for the shared database the
// composite instantiation write lands in.
type mockProjectRepository struct {
	projects          map[string]*secondary.ProjectRecord
	milestones        *mockMilestoneRepository
	infraTasks        *mockInfraTaskRepository
	createTimelineErr error
	nextID            int
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{projects: make(map[string]*secondary.ProjectRecord)}
}

func (m *mockProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
		project.UpdatedAt = project.CreatedAt
	}
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepository) CreateWithTimeline(ctx context.Context, project *secondary.ProjectRecord, milestones []*secondary.MilestoneRecord, tasks []*secondary.InfraTaskRecord) error {
	// Atomic: on failure nothing is written, not even the project row.
	if m.createTimelineErr != nil {
		return m.createTimelineErr
	}
	if err := m.Create(ctx, project); err != nil {
		return err
	}
	if m.milestones != nil {
		if err := m.milestones.CreateBatch(ctx, milestones); err != nil {
			return err
		}
	}
	if m.infraTasks != nil {
		if err := m.infraTasks.CreateBatch(ctx, tasks); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	if project, ok := m.projects[id]; ok {
		return project, nil
	}
	return nil, fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
}

func (m *mockProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	var result []*secondary.ProjectRecord
	for _, p := range m.projects {
		if filters.ClientID != "" && p.ClientID != filters.ClientID {
			continue
		}
		if filters.Type != "" && p.Type != filters.Type {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProjectRepository) SetCascadePolicy(ctx context.Context, id string, enabled bool) error {
	project, ok := m.projects[id]
	if !ok {
		return fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
	}
	project.CascadePolicyEnabled = enabled
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.projects[id]; !ok {
		return fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
	}
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("PROJ-%03d", m.nextID), nil
}

// mockMilestoneRepository implements secondary.MilestoneRepository for testing.
type mockMilestoneRepository struct {
	milestones map[string]*secondary.MilestoneRecord
}

func newMockMilestoneRepository() *mockMilestoneRepository {
	return &mockMilestoneRepository{milestones: make(map[string]*secondary.MilestoneRecord)}
}

func (m *mockMilestoneRepository) CreateBatch(ctx context.Context, milestones []*secondary.MilestoneRecord) error {
	for _, ms := range milestones {
		m.milestones[ms.ID] = ms
	}
	return nil
}

func (m *mockMilestoneRepository) GetByID(ctx context.Context, id string) (*secondary.MilestoneRecord, error) {
	if ms, ok := m.milestones[id]; ok {
		return ms, nil
	}
	return nil, fmt.Errorf("milestone %s: %w", id, secondary.ErrNotFound)
}

func (m *mockMilestoneRepository) GetByProject(ctx context.Context, projectID string) ([]*secondary.MilestoneRecord, error) {
	var result []*secondary.MilestoneRecord
	for _, ms := range m.milestones {
		if ms.ProjectID == projectID {
			result = append(result, ms)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result, nil
}

func (m *mockMilestoneRepository) List(ctx context.Context, filters secondary.MilestoneFilters) ([]*secondary.MilestoneRecord, error) {
	var result []*secondary.MilestoneRecord
	for _, ms := range m.milestones {
		if filters.ProjectID != "" && ms.ProjectID != filters.ProjectID {
			continue
		}
		if filters.Status != "" && ms.Status != filters.Status {
			continue
		}
		if filters.Owner != "" && ms.Owner != filters.Owner {
			continue
		}
		result = append(result, ms)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ProjectID != result[j].ProjectID {
			return result[i].ProjectID < result[j].ProjectID
		}
		return result[i].Order < result[j].Order
	})
	return result, nil
}

func (m *mockMilestoneRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	ms, ok := m.milestones[id]
	if !ok {
		return fmt.Errorf("milestone %s: %w", id, secondary.ErrNotFound)
	}
	ms.Status = status
	return nil
}

func (m *mockMilestoneRepository) MarkSubmitted(ctx context.Context, id string, submittedAt time.Time) error {
	ms, ok := m.milestones[id]
	if !ok {
		return fmt.Errorf("milestone %s: %w", id, secondary.ErrNotFound)
	}
	ms.Status = "submitted"
	ms.SubmittedAt = &submittedAt
	return nil
}

func (m *mockMilestoneRepository) ApplyCompletion(ctx context.Context, update secondary.CompletionUpdate) error {
	ms, ok := m.milestones[update.MilestoneID]
	if !ok {
		return fmt.Errorf("milestone %s: %w", update.MilestoneID, secondary.ErrNotFound)
	}
	completedAt := update.CompletedAt
	ms.Status = "done"
	ms.CompletedAt = &completedAt
	for _, shift := range update.Shifts {
		if target, ok := m.milestones[shift.MilestoneID]; ok {
			target.DueDate = shift.NewDueDate
		}
	}
	if update.UnlockID != "" {
		if successor, ok := m.milestones[update.UnlockID]; ok && successor.Status == "locked" {
			successor.Status = "open"
		}
	}
	return nil
}

func (m *mockMilestoneRepository) ShiftDueDates(ctx context.Context, shifts []secondary.DueDateShiftRecord) error {
	for _, shift := range shifts {
		if target, ok := m.milestones[shift.MilestoneID]; ok {
			target.DueDate = shift.NewDueDate
		}
	}
	return nil
}

// mockInfraTaskRepository implements secondary.InfraTaskRepository for testing.
type mockInfraTaskRepository struct {
	tasks map[string]*secondary.InfraTaskRecord
}

func newMockInfraTaskRepository() *mockInfraTaskRepository {
	return &mockInfraTaskRepository{tasks: make(map[string]*secondary.InfraTaskRecord)}
}

func (m *mockInfraTaskRepository) CreateBatch(ctx context.Context, tasks []*secondary.InfraTaskRecord) error {
	for _, t := range tasks {
		m.tasks[t.ID] = t
	}
	return nil
}

func (m *mockInfraTaskRepository) GetByProject(ctx context.Context, projectID string) ([]*secondary.InfraTaskRecord, error) {
	var result []*secondary.InfraTaskRecord
	for _, t := range m.tasks {
		if t.ProjectID == projectID {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockInfraTaskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	task, ok := m.tasks[id]
	if !ok {
		return fmt.Errorf("infrastructure task %s: %w", id, secondary.ErrNotFound)
	}
	task.Completed = completed
	return nil
}

// mockActivityLogRepository implements secondary.ActivityLogRepository for
// testing.
type mockActivityLogRepository struct {
	entries []*secondary.ActivityRecord
}

func newMockActivityLogRepository() *mockActivityLogRepository {
	return &mockActivityLogRepository{}
}

func (m *mockActivityLogRepository) Append(ctx context.Context, entry *secondary.ActivityRecord) error {
	entry.ID = int64(len(m.entries) + 1)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockActivityLogRepository) GetByProject(ctx context.Context, projectID string, limit int) ([]*secondary.ActivityRecord, error) {
	var result []*secondary.ActivityRecord
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].ProjectID != projectID {
			continue
		}
		result = append(result, m.entries[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// typesOf collects the activity type of every logged entry, oldest first.
func (m *mockActivityLogRepository) typesOf() []string {
	var types []string
	for _, e := range m.entries {
		types = append(types, e.Type)
	}
	return types
}

// mockTemplateCatalog implements secondary.TemplateCatalog for testing.
type mockTemplateCatalog struct {
	templates map[string]*secondary.TemplateRecord
}

func newMockTemplateCatalog() *mockTemplateCatalog {
	return &mockTemplateCatalog{templates: make(map[string]*secondary.TemplateRecord)}
}

func (m *mockTemplateCatalog) GetByType(ctx context.Context, projectType string) (*secondary.TemplateRecord, error) {
	if tmpl, ok := m.templates[projectType]; ok {
		return tmpl, nil
	}
	return nil, fmt.Errorf("type %s: %w", projectType, secondary.ErrTemplateNotFound)
}

func (m *mockTemplateCatalog) List(ctx context.Context) ([]*secondary.TemplateRecord, error) {
	var result []*secondary.TemplateRecord
	for _, t := range m.templates {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result, nil
}

// ============================================================================
// Shared Helpers
// ============================================================================

// fixedClock returns a clock pinned to the given instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
