package ports

import (
	"context"

	"teamdash/models"

	"github.com/google/uuid"
)

// PersonRepository defines the interface for roster data operations
type PersonRepository interface {
	// List returns the roster ordered newest member first
	List(ctx context.Context) ([]models.Person, error)

	// Get retrieves a member by ID
	Get(ctx context.Context, id uuid.UUID) (models.Person, error)

	// Add inserts a member as the most recently joined and returns the stored record
	Add(ctx context.Context, person models.Person) (models.Person, error)

	// Update replaces the name, title and compensation of an existing member
	Update(ctx context.Context, person models.Person) (models.Person, error)

	// Delete removes a member
	Delete(ctx context.Context, id uuid.UUID) error
}
