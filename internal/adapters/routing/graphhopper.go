package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"contact-map-service/internal/domain"
	"contact-map-service/internal/platform/obs"
)

// GraphHopperClient implements RouteProvider against the GraphHopper routing
// API. The vehicle profile and locale are fixed; a single request is issued
// per route with no retry.
//
// Per the routing contract, a missing path and a transport failure both
// surface as domain.ErrRouteUnavailable so callers can keep whatever route
// they last displayed.
type GraphHopperClient struct {
	session *http.Client
	apiKey  string
	baseURL string
	vehicle string
	locale  string
}

func NewGraphHopperClient(apiKey, baseURL string) (*GraphHopperClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("graphhopper api key is empty")
	}

	return &GraphHopperClient{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		vehicle: "car",
		locale:  "tr",
	}, nil
}

type routeRequest struct {
	Points        [][]float64 `json:"points"`
	Vehicle       string      `json:"vehicle"`
	Locale        string      `json:"locale"`
	CalcPoints    bool        `json:"calc_points"`
	PointsEncoded bool        `json:"points_encoded"`
}

type routeResponse struct {
	Paths []struct {
		Points struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"points"`
	} `json:"paths"`
}

// Route computes the drivable path from start to end.
func (g *GraphHopperClient) Route(ctx context.Context, start, end domain.Coordinates) (_ domain.Route, err error) {
	defer obs.Time(ctx, "graphhopper.Route")(&err)

	bodyObj := routeRequest{
		Points:        [][]float64{start.CoordsToList(), end.CoordsToList()},
		Vehicle:       g.vehicle,
		Locale:        g.locale,
		CalcPoints:    true,
		PointsEncoded: false,
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("route: marshal request: %w", err)
	}

	endpoint := g.baseURL + "/route?key=" + g.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("route: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("route: execute request: %v: %w", err, domain.ErrRouteUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf(
			"route: unexpected status %d: %s: %w",
			resp.StatusCode, strings.TrimSpace(string(b)), domain.ErrRouteUnavailable,
		)
	}

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("route: decode response: %v: %w", err, domain.ErrRouteUnavailable)
	}

	if len(decoded.Paths) == 0 {
		return nil, fmt.Errorf("route: response carries no path: %w", domain.ErrRouteUnavailable)
	}

	coords := decoded.Paths[0].Points.Coordinates
	if len(coords) == 0 {
		return nil, fmt.Errorf("route: path carries no points: %w", domain.ErrRouteUnavailable)
	}

	// GraphHopper returns [lon, lat] pairs; flip into internal ordering.
	points := make(domain.Route, 0, len(coords))
	for i, pair := range coords {
		if len(pair) < 2 {
			return nil, fmt.Errorf("route: invalid coordinate pair at index %d: %w", i, domain.ErrRouteUnavailable)
		}
		points = append(points, domain.Coordinates{Lat: pair[1], Lon: pair[0]})
	}

	return points, nil
}
