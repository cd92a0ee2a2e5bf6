package ports

import (
	"context"

	"contact-map-service/internal/domain"
)

// Contract for resolving a free-text address to geographic coordinates.
type Geocoder interface {
	// Geocode returns the best match for the address.
	// A lookup with zero results yields domain.ErrNoGeocodeMatch; any other
	// error is a transport failure.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
