package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"contact-map-service/internal/api/dto"
	"contact-map-service/internal/domain"
	"contact-map-service/internal/services"
)

// RouteHandler computes the drivable path between two contacts.
// The result is returned to the caller and never stored; a failed request
// leaves whatever route the client last displayed untouched.
type RouteHandler struct {
	Service *services.RouteService
}

func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.StartID) == "" || strings.TrimSpace(req.EndID) == "" {
		writeError(w, r, http.StatusBadRequest, "start_id and end_id are required")
		return
	}

	route, err := h.Service.RouteBetween(r.Context(), req.StartID, req.EndID)
	if err != nil {
		if errors.Is(err, domain.ErrRouteUnavailable) {
			log.Printf("route unavailable: start=%s end=%s err=%v", req.StartID, req.EndID, err)
			writeError(w, r, http.StatusUnprocessableEntity, "route unavailable")
			return
		}
		log.Printf("route failed: start=%s end=%s err=%v", req.StartID, req.EndID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RouteResponse{Points: make([]dto.RoutePoint, 0, len(route))}
	for _, p := range route {
		res.Points = append(res.Points, dto.RoutePoint{Lat: p.Lat, Lon: p.Lon})
	}

	writeJSON(w, r, http.StatusOK, res)
}
