// Package app contains the service implementations behind the primary ports.
// Services orchestrate the pure core functions and the repositories; all
// business rules live in internal/core.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/cadence/internal/ports/primary"
	"github.com/example/cadence/internal/ports/secondary"
)

// ClientServiceImpl implements the ClientService interface.
type ClientServiceImpl struct {
	clientRepo secondary.ClientRepository
}

// NewClientService creates a new ClientService with injected dependencies.
func NewClientService(clientRepo secondary.ClientRepository) *ClientServiceImpl {
	return &ClientServiceImpl{clientRepo: clientRepo}
}

// CreateClient registers a new client.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req primary.CreateClientRequest) (*primary.Client, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if req.Email == "" {
		return nil, fmt.Errorf("client email is required")
	}

	nextID, err := s.clientRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate client ID: %w", err)
	}

	record := &secondary.ClientRecord{
		ID:    nextID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.clientRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	created, err := s.clientRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created client: %w", err)
	}
	return recordToClient(created), nil
}

// GetClient retrieves a client by ID.
func (s *ClientServiceImpl) GetClient(ctx context.Context, clientID string) (*primary.Client, error) {
	record, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return recordToClient(record), nil
}

// ListClients lists all clients.
func (s *ClientServiceImpl) ListClients(ctx context.Context) ([]*primary.Client, error) {
	records, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*primary.Client, len(records))
	for i, r := range records {
		clients[i] = recordToClient(r)
	}
	return clients, nil
}

// UpdateClient updates a client's contact details.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req primary.UpdateClientRequest) error {
	existing, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Email != "" {
		existing.Email = req.Email
	}
	if req.Phone != "" {
		existing.Phone = req.Phone
	}

	if err := s.clientRepo.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// DeleteClient removes a client.
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, clientID string) error {
	return s.clientRepo.Delete(ctx, clientID)
}

func recordToClient(r *secondary.ClientRecord) *primary.Client {
	return &primary.Client{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// Ensure ClientServiceImpl implements the interface
var _ primary.ClientService = (*ClientServiceImpl)(nil)
