package handlers

import (
	"fmt"
	"log"
	"net/http"

	"contact-map-service/internal/ports"
)

// ExportHandler serves the contact list as a downloadable workbook.
type ExportHandler struct {
	Repo     ports.ContactRepository
	Exporter ports.Exporter
}

// Export encodes the full list, unset coordinates included as empty cells,
// and serves it under the exporter's fixed filename.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	contacts := h.Repo.List(r.Context())

	encoded, err := h.Exporter.Export(contacts)
	if err != nil {
		log.Printf("export failed: err=%v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", h.Exporter.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.Exporter.Filename()))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(encoded); err != nil {
		log.Printf("export write failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
