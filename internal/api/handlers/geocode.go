package handlers

import (
	"errors"
	"log"
	"net/http"

	"contact-map-service/internal/domain"
	"contact-map-service/internal/services"
)

// GeocodeHandler triggers address resolution for a single contact.
type GeocodeHandler struct {
	Service *services.GeocodeService
}

// Geocode resolves the contact's address and returns the updated record.
// A lookup with no match and a transport failure are reported separately;
// neither leaves partial coordinates behind.
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	contact, err := h.Service.GeocodeContact(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toContactResponse(contact))
	case errors.Is(err, domain.ErrContactNotFound):
		writeError(w, r, http.StatusNotFound, "contact not found")
	case errors.Is(err, domain.ErrNoGeocodeMatch):
		writeError(w, r, http.StatusNotFound, "address not found")
	case errors.Is(err, services.ErrGeocodeSuperseded):
		writeError(w, r, http.StatusConflict, "a newer geocode request for this contact won")
	default:
		log.Printf("geocode failed: contact=%s err=%v", id, err)
		writeError(w, r, http.StatusBadGateway, "geocoding service unavailable")
	}
}
