// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI and any future transport talk to.
package primary

import "context"

// ClientService defines the primary port for client operations.
type ClientService interface {
	// CreateClient registers a new client.
	CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error)

	// GetClient retrieves a client by ID.
	GetClient(ctx context.Context, clientID string) (*Client, error)

	// ListClients lists all clients.
	ListClients(ctx context.Context) ([]*Client, error)

	// UpdateClient updates a client's contact details.
	UpdateClient(ctx context.Context, req UpdateClientRequest) error

	// DeleteClient removes a client.
	DeleteClient(ctx context.Context, clientID string) error
}

// CreateClientRequest contains parameters for registering a client.
type CreateClientRequest struct {
	Name  string
	Email string
	Phone string // Optional
}

// UpdateClientRequest contains parameters for updating a client.
type UpdateClientRequest struct {
	ClientID string
	Name     string
	Email    string
	Phone    string
}

// Client represents a client entity at the port boundary.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt string
}
