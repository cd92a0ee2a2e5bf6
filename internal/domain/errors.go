package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrContactNotFound reports an operation that named an identifier
	// absent from the contact list.
	ErrContactNotFound = errors.New("contact not found")

	// ErrNoGeocodeMatch reports a geocode lookup that returned zero results.
	// The contact's coordinates stay unset.
	ErrNoGeocodeMatch = errors.New("no geocode match for address")

	// ErrRouteUnavailable reports that no drivable path could be produced,
	// either because the routing service returned none or because an
	// endpoint contact has no coordinates yet.
	ErrRouteUnavailable = errors.New("route unavailable")
)

// ValidationError reports a required contact field that was empty at submit.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q must not be empty", e.Field)
}
