package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"contact-map-service/internal/domain"
	"contact-map-service/internal/ports"
)

// ErrGeocodeSuperseded reports a geocode completion that arrived after a
// newer request was issued for the same contact. The late result is
// discarded; only the newest request may merge coordinates.
var ErrGeocodeSuperseded = errors.New("geocode request superseded")

// GeocodeService resolves a contact's address and merges the result into the
// contact list.
//
// Requests are keyed by contact identifier: each issue bumps a per-contact
// token, and a completion whose token has been superseded, or whose contact
// was deleted mid-flight, is discarded instead of blindly merged. The token
// check and the merge are one step under the service lock, so a competing
// completion cannot land between the two.
type GeocodeService struct {
	contacts ports.ContactDirectory
	geocoder ports.Geocoder

	mu       sync.Mutex
	requests map[string]*requestState
}

// requestState tracks the newest token for a contact and how many lookups
// are still in flight. An entry exists only while lookups are outstanding,
// so the table stays bounded by concurrent requests, not by history.
type requestState struct {
	seq      uint64
	inFlight int
}

func NewGeocodeService(contacts ports.ContactDirectory, geocoder ports.Geocoder) *GeocodeService {
	return &GeocodeService{
		contacts: contacts,
		geocoder: geocoder,
		requests: make(map[string]*requestState),
	}
}

// GeocodeContact looks up the contact, resolves its address, and merges the
// coordinates. It returns the updated contact, or:
//   - domain.ErrContactNotFound when the id is unknown or was deleted
//     while the lookup was in flight
//   - domain.ErrNoGeocodeMatch when the address resolves to nothing
//   - ErrGeocodeSuperseded when a newer request won the merge
//   - any transport error from the geocoder, unchanged
func (s *GeocodeService) GeocodeContact(ctx context.Context, id string) (domain.Contact, error) {
	contact, ok := s.contacts.Get(ctx, id)
	if !ok {
		return domain.Contact{}, fmt.Errorf("geocode contact %q: %w", id, domain.ErrContactNotFound)
	}

	token := s.begin(id)

	coords, err := s.geocoder.Geocode(ctx, contact.Address)
	if err != nil {
		s.release(id)
		return domain.Contact{}, fmt.Errorf("geocode contact %q: %w", id, err)
	}

	merged, current, err := s.settle(ctx, id, token, coords)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("geocode contact %q: merge: %w", id, err)
	}
	if !current {
		log.Printf("discarding superseded geocode result contact=%s", id)
		return domain.Contact{}, fmt.Errorf("geocode contact %q: %w", id, ErrGeocodeSuperseded)
	}
	if !merged {
		log.Printf("discarding geocode result for deleted contact=%s", id)
		return domain.Contact{}, fmt.Errorf("geocode contact %q: %w", id, domain.ErrContactNotFound)
	}

	updated, ok := s.contacts.Get(ctx, id)
	if !ok {
		return domain.Contact{}, fmt.Errorf("geocode contact %q: %w", id, domain.ErrContactNotFound)
	}

	return updated, nil
}

// begin registers a new request for the contact and returns its token.
func (s *GeocodeService) begin(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.requests[id]
	if st == nil {
		st = &requestState{}
		s.requests[id] = st
	}
	st.seq++
	st.inFlight++
	return st.seq
}

// settle completes a request: if the token still names the newest request,
// the coordinates are merged while the lock is held, so no competing
// completion can slip between the currency check and the write.
// It reports whether the merge applied and whether the token was current.
func (s *GeocodeService) settle(ctx context.Context, id string, token uint64, coords domain.Coordinates) (merged, current bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.releaseLocked(id)

	st := s.requests[id]
	if st == nil || st.seq != token {
		return false, false, nil
	}

	merged, err = s.contacts.MergeCoordinates(ctx, id, coords)
	return merged, true, err
}

// release ends a request that never reached settle (lookup failed).
func (s *GeocodeService) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked(id)
}

// releaseLocked drops one in-flight count and prunes the entry once no
// lookups remain. Callers must hold s.mu.
func (s *GeocodeService) releaseLocked(id string) {
	st := s.requests[id]
	if st == nil {
		return
	}

	st.inFlight--
	if st.inFlight <= 0 {
		delete(s.requests, id)
	}
}
