package api

import (
	"net/http"
)

// PeopleHandler serves per-person detail, career figures included.
type PeopleHandler struct {
	deps Dependencies
}

// NewPeopleHandler creates a new people handler.
func NewPeopleHandler(deps Dependencies) *PeopleHandler {
	return &PeopleHandler{deps: deps}
}

// HandleGetPerson handles GET /api/people/{id} requests.
func (h *PeopleHandler) HandleGetPerson(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	p, err := h.deps.Person(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPersonDetail(p))
}
