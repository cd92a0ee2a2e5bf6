package ports

import (
	"context"

	"contact-map-service/internal/domain"
)

// Contract for computing a drivable path between two coordinate pairs.
type RouteProvider interface {
	// Route returns the path geometry from start to end, ordered start-first.
	// A response without a usable path yields an error wrapping
	// domain.ErrRouteUnavailable.
	Route(ctx context.Context, start, end domain.Coordinates) (domain.Route, error)
}
