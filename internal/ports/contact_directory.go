package ports

import (
	"context"

	"contact-map-service/internal/domain"
)

// Port: the contact list as seen by the geocoding and routing services.
// Satisfied by the contact repository.
type ContactDirectory interface {
	// Get returns the contact with the given identifier.
	Get(ctx context.Context, id string) (domain.Contact, bool)

	// List returns the current ordered snapshot of the contact list.
	List(ctx context.Context) []domain.Contact

	// MergeCoordinates records a geocoding result on the matching contact.
	// It reports false when the identifier is no longer present.
	MergeCoordinates(ctx context.Context, id string, coords domain.Coordinates) (bool, error)
}
