package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"contact-map-service/internal/api/dto"
	"contact-map-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s status=%d err=%v", r.Method, r.URL.Path, status, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func toContactResponse(c domain.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:      c.ID,
		Name:    c.Name,
		Surname: c.Surname,
		GSM:     c.GSM,
		Address: c.Address,
		Lat:     c.Lat,
		Lon:     c.Lon,
	}
}
