package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"contact-map-service/internal/domain"
	"contact-map-service/internal/platform/obs"
)

// NominatimGeocoder implements Geocoder against the OpenStreetMap Nominatim
// search endpoint. Each lookup is a single request asking for exactly one
// match; there is no retry, no backoff, and no caching of repeated lookups.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	return &NominatimGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		// Nominatim's usage policy requires an identifying User-Agent.
		userAgent: "contact-map-service/1.0",
	}
}

// Nominatim returns lat/lon as JSON strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a free-text address to coordinates using the first (and
// only requested) match. Zero matches yield domain.ErrNoGeocodeMatch.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: address must be non-empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search", nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("q", address)
	q.Set("format", "jsonv2")
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.session.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: execute request: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return domain.Coordinates{}, fmt.Errorf(
			"geocode %q: unexpected status %d: %s",
			address, resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}

	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, domain.ErrNoGeocodeMatch)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lat %q: %w", address, results[0].Lat, err)
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lon %q: %w", address, results[0].Lon, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
