package ports

import (
	"context"

	"contact-map-service/internal/domain"
)

// Port: the full mutable contact list as exposed to the HTTP boundary.
type ContactRepository interface {
	ContactDirectory

	// Add appends a new contact with a fresh identifier and no coordinates.
	Add(ctx context.Context, fields domain.ContactFields) (domain.Contact, error)

	// Update replaces the textual fields of an existing contact.
	Update(ctx context.Context, id string, fields domain.ContactFields) (domain.Contact, error)

	// Remove deletes the contact if present; unknown identifiers are a no-op.
	Remove(ctx context.Context, id string) error
}
