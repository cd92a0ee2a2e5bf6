package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"contact-map-service/internal/domain"
	"contact-map-service/internal/ports"

	"github.com/google/uuid"
)

// ContactRepository owns the in-memory contact list and keeps it synchronized
// with a ContactStore. Every mutation replaces the matching record and writes
// the full list back to the store.
//
// Persistence is best-effort: a failed store write is logged and the
// in-memory mutation stands, so the process keeps serving the latest state.
//
// The repository is safe for concurrent use. Interleaved mutations for the
// same identifier resolve last-write-wins.
type ContactRepository struct {
	mu       sync.Mutex
	contacts []domain.Contact
	store    ports.ContactStore
}

// NewContactRepository loads the initial list from the store.
func NewContactRepository(ctx context.Context, store ports.ContactStore) (*ContactRepository, error) {
	contacts, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("new contact repository: load store: %w", err)
	}

	return &ContactRepository{
		contacts: contacts,
		store:    store,
	}, nil
}

// Add appends a new contact with a freshly generated identifier and no
// coordinates. All four textual fields are required.
func (r *ContactRepository) Add(ctx context.Context, fields domain.ContactFields) (domain.Contact, error) {
	if err := validateFields(fields); err != nil {
		return domain.Contact{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	contact := domain.Contact{
		ID:      uuid.NewString(),
		Name:    fields.Name,
		Surname: fields.Surname,
		GSM:     fields.GSM,
		Address: fields.Address,
	}

	r.contacts = append(r.contacts, contact)
	r.persist(ctx)

	return contact, nil
}

// Update replaces the textual fields of an existing contact.
// Coordinates are left untouched, even when the address text changed.
func (r *ContactRepository) Update(ctx context.Context, id string, fields domain.ContactFields) (domain.Contact, error) {
	if err := validateFields(fields); err != nil {
		return domain.Contact{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.contacts {
		if r.contacts[i].ID != id {
			continue
		}

		r.contacts[i].Name = fields.Name
		r.contacts[i].Surname = fields.Surname
		r.contacts[i].GSM = fields.GSM
		r.contacts[i].Address = fields.Address
		r.persist(ctx)

		return cloneContact(r.contacts[i]), nil
	}

	return domain.Contact{}, fmt.Errorf("update contact %q: %w", id, domain.ErrContactNotFound)
}

// Remove deletes the contact with the given identifier.
// Removing an unknown identifier is a no-op, not an error.
func (r *ContactRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.contacts {
		if r.contacts[i].ID != id {
			continue
		}

		r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
		r.persist(ctx)
		return nil
	}

	return nil
}

// MergeCoordinates records a geocoding result on the matching contact.
// It reports false when the identifier is no longer present, in which case
// the result is discarded without touching the list.
func (r *ContactRepository) MergeCoordinates(ctx context.Context, id string, coords domain.Coordinates) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.contacts {
		if r.contacts[i].ID != id {
			continue
		}

		lat, lon := coords.Lat, coords.Lon
		r.contacts[i].Lat = &lat
		r.contacts[i].Lon = &lon
		r.persist(ctx)

		return true, nil
	}

	return false, nil
}

// Get returns the contact with the given identifier.
func (r *ContactRepository) Get(ctx context.Context, id string) (domain.Contact, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contacts {
		if c.ID == id {
			return cloneContact(c), true
		}
	}

	return domain.Contact{}, false
}

// List returns a snapshot of the contact list in insertion order.
func (r *ContactRepository) List(ctx context.Context) []domain.Contact {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		out = append(out, cloneContact(c))
	}
	return out
}

// cloneContact copies a record including its coordinate pointers, so a
// caller writing through the snapshot cannot reach repository state.
func cloneContact(c domain.Contact) domain.Contact {
	if c.Lat != nil {
		lat := *c.Lat
		c.Lat = &lat
	}
	if c.Lon != nil {
		lon := *c.Lon
		c.Lon = &lon
	}
	return c
}

// persist writes the full list to the store. Callers must hold r.mu.
func (r *ContactRepository) persist(ctx context.Context) {
	if err := r.store.Save(ctx, r.contacts); err != nil {
		log.Printf("contact store write failed: %v", err)
	}
}

func validateFields(fields domain.ContactFields) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", fields.Name},
		{"surname", fields.Surname},
		{"gsm", fields.GSM},
		{"address", fields.Address},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &domain.ValidationError{Field: f.name}
		}
	}

	return nil
}
