package ports

import (
	"context"

	"contact-map-service/internal/domain"
)

// Port: a boundary for persisting the contact list as a whole.
// Implementations store the full list under a single key and overwrite it on
// every Save; there are no partial writes and no schema versioning.
type ContactStore interface {
	// Load returns the previously saved list. If nothing was saved, or the
	// stored value cannot be parsed, implementations return the fixed seed
	// list instead of an error.
	Load(ctx context.Context) ([]domain.Contact, error)

	// Save serializes and stores the full list, replacing any prior value.
	Save(ctx context.Context, contacts []domain.Contact) error
}
