package api

import (
	"net/http"
)

// CompaniesHandler serves company listings and per-company detail.
type CompaniesHandler struct {
	deps Dependencies
}

// NewCompaniesHandler creates a new companies handler.
func NewCompaniesHandler(deps Dependencies) *CompaniesHandler {
	return &CompaniesHandler{deps: deps}
}

// HandleListCompanies handles GET /api/companies requests. Companies come
// back in standings order.
func (h *CompaniesHandler) HandleListCompanies(w http.ResponseWriter, r *http.Request) {
	standings, err := h.deps.Standings()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(standings),
		"companies": newCompanySummaries(standings),
	})
}

// HandleGetCompany handles GET /api/companies/{slug} requests.
func (h *CompaniesHandler) HandleGetCompany(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	c, err := h.deps.Company(slug)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCompanyDetail(c))
}
