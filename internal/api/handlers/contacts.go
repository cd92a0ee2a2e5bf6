package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"contact-map-service/internal/api/dto"
	"contact-map-service/internal/domain"
	"contact-map-service/internal/ports"
)

// ContactHandler exposes the contact list CRUD endpoints.
type ContactHandler struct {
	Repo ports.ContactRepository
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts := h.Repo.List(r.Context())

	res := dto.ListContactsResponse{
		Contacts: make([]dto.ContactResponse, 0, len(contacts)),
	}
	for _, c := range contacts {
		res.Contacts = append(res.Contacts, toContactResponse(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeContactRequest(w, r)
	if !ok {
		return
	}

	contact, err := h.Repo.Add(r.Context(), fields)
	if err != nil {
		writeContactError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toContactResponse(contact))
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	fields, ok := decodeContactRequest(w, r)
	if !ok {
		return
	}

	contact, err := h.Repo.Update(r.Context(), id, fields)
	if err != nil {
		writeContactError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toContactResponse(contact))
}

// Delete removes the contact. Deleting an unknown identifier succeeds with
// the same status, mirroring the repository's no-op semantics.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeContactRequest(w http.ResponseWriter, r *http.Request) (domain.ContactFields, bool) {
	var req dto.ContactRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return domain.ContactFields{}, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return domain.ContactFields{}, false
	}

	return domain.ContactFields{
		Name:    req.Name,
		Surname: req.Surname,
		GSM:     req.GSM,
		Address: req.Address,
	}, true
}

func writeContactError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, r, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrContactNotFound):
		writeError(w, r, http.StatusNotFound, "contact not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
