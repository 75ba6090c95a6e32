// Package kingdomsession stores the kingdom a user is currently working on
// together with their locks and settings
package kingdomsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=kingdomsessionmock github.com/KirkDiggler/kingdom-randomizer/internal/repositories/kingdom_session Repository

// Session is the current kingdom of one user plus the state used to
// re-randomize it
type Session struct {
	ID string `json:"id"`

	// Kingdom is nil until the first randomization succeeds
	Kingdom *entities.Kingdom `json:"kingdom,omitempty"`

	Selection entities.Selection `json:"selection"`
	Settings  entities.Settings  `json:"settings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	Session *Session
}

// CreateOutput contains the stored session
type CreateOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *Session
}

// UpdateInput contains the session to replace
type UpdateInput struct {
	Session *Session
}

// UpdateOutput contains the stored session
type UpdateOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; deletion has no result
type DeleteOutput struct{}

// ListInput contains parameters for listing recent sessions
type ListInput struct {
	Limit int

	// WithSessions also loads each listed session
	WithSessions bool
}

// ListOutput contains session ids, most recently updated first. Sessions is
// only filled when requested and skips sessions that expired meanwhile.
type ListOutput struct {
	IDs      []string
	Sessions []*Session
}

// Repository defines the interface for session storage
type Repository interface {
	// Create stores a new session
	// Returns errors.AlreadyExists if the id is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session
	// Returns errors.NotFound if it does not exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session and refreshes its expiry
	// Returns errors.NotFound if it does not exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns recently updated session ids
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
