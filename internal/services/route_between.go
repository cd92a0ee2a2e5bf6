package services

import (
	"context"
	"fmt"

	"contact-map-service/internal/domain"
	"contact-map-service/internal/ports"
)

// RouteService computes the drivable path between two contacts.
// The result is derived view state returned to the caller; it is never
// written back to the contact list.
type RouteService struct {
	contacts ports.ContactDirectory
	provider ports.RouteProvider
}

func NewRouteService(contacts ports.ContactDirectory, provider ports.RouteProvider) *RouteService {
	return &RouteService{contacts: contacts, provider: provider}
}

// RouteBetween resolves both endpoint contacts and delegates to the route
// provider. A missing or not-yet-geocoded endpoint yields
// domain.ErrRouteUnavailable rather than reaching the provider.
func (s *RouteService) RouteBetween(ctx context.Context, startID, endID string) (domain.Route, error) {
	start, err := s.endpoint(ctx, "start", startID)
	if err != nil {
		return nil, err
	}

	end, err := s.endpoint(ctx, "end", endID)
	if err != nil {
		return nil, err
	}

	route, err := s.provider.Route(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("route between %q and %q: %w", startID, endID, err)
	}

	return route, nil
}

func (s *RouteService) endpoint(ctx context.Context, role, id string) (domain.Coordinates, error) {
	contact, ok := s.contacts.Get(ctx, id)
	if !ok {
		return domain.Coordinates{}, fmt.Errorf(
			"route between: %s contact %q not found: %w", role, id, domain.ErrRouteUnavailable,
		)
	}

	coords, ok := contact.Coordinates()
	if !ok {
		return domain.Coordinates{}, fmt.Errorf(
			"route between: %s contact %q has no coordinates: %w", role, id, domain.ErrRouteUnavailable,
		)
	}

	return coords, nil
}
