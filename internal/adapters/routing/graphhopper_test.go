package routing

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"contact-map-service/internal/domain"
)

func TestRouteDecodesPathGeometry(t *testing.T) {
	start := domain.Coordinates{Lat: 52.5096, Lon: -1.8164}
	end := domain.Coordinates{Lat: 51.5237, Lon: -0.1586}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", r.URL.Query().Get("key"))
		}

		var body struct {
			Points        [][]float64 `json:"points"`
			Vehicle       string      `json:"vehicle"`
			CalcPoints    bool        `json:"calc_points"`
			PointsEncoded bool        `json:"points_encoded"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}

		// Endpoints travel as [lon, lat].
		if len(body.Points) != 2 || body.Points[0][0] != start.Lon || body.Points[0][1] != start.Lat {
			t.Errorf("unexpected points payload: %v", body.Points)
		}
		if body.Vehicle != "car" {
			t.Errorf("vehicle = %q, want car", body.Vehicle)
		}
		if !body.CalcPoints || body.PointsEncoded {
			t.Errorf("calc_points=%v points_encoded=%v, want true/false", body.CalcPoints, body.PointsEncoded)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"paths":[{"points":{"coordinates":[
			[-1.8164,52.5096],
			[-1.2000,52.0000],
			[-0.1586,51.5237]
		]}}]}`))
	}))
	defer srv.Close()

	client, err := NewGraphHopperClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	route, err := client.Route(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(route) != 3 {
		t.Fatalf("expected 3 points, got %d", len(route))
	}

	// First and last points approximate the requested endpoints, in lat/lon order.
	if !approx(route[0], start) {
		t.Errorf("first point = %+v, want ~%+v", route[0], start)
	}
	if !approx(route[len(route)-1], end) {
		t.Errorf("last point = %+v, want ~%+v", route[len(route)-1], end)
	}
}

func TestRouteMissingPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"paths":[]}`))
	}))
	defer srv.Close()

	client, err := NewGraphHopperClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.Route(context.Background(), domain.Coordinates{Lat: 1, Lon: 2}, domain.Coordinates{Lat: 3, Lon: 4})
	if !errors.Is(err, domain.ErrRouteUnavailable) {
		t.Fatalf("expected ErrRouteUnavailable, got %v", err)
	}
}

func TestRouteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewGraphHopperClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.Route(context.Background(), domain.Coordinates{Lat: 1, Lon: 2}, domain.Coordinates{Lat: 3, Lon: 4})
	if !errors.Is(err, domain.ErrRouteUnavailable) {
		t.Fatalf("transport failure must surface as unavailable, got %v", err)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewGraphHopperClient("  ", "http://unused.invalid"); err == nil {
		t.Fatal("expected an error for an empty api key")
	}
}

func approx(got, want domain.Coordinates) bool {
	const eps = 1e-6
	return math.Abs(got.Lat-want.Lat) < eps && math.Abs(got.Lon-want.Lon) < eps
}
