package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/okian/execap/internal/adapters/source"
)

// RefreshHandler triggers a reload from the configured source.
type RefreshHandler struct {
	deps Dependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

type refreshResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Year      int    `json:"year"`
	Companies int    `json:"companies"`
	People    int    `json:"people"`
	Contracts int    `json:"contracts"`
	Warnings  int    `json:"warnings"`
}

// HandleRefresh handles POST /api/refresh requests. An optional year query
// parameter rebuilds for that year; zero means the configured default. The
// previous snapshot keeps serving if the reload fails.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadYear)
			return
		}
		year = n
	}

	snap, err := h.deps.Refresh(r.Context(), year)
	if err != nil {
		if errors.Is(err, source.ErrSourceUnavailable) {
			writeError(w, http.StatusBadGateway, "source_unavailable", err)
			return
		}
		writeDomainError(w, err)
		return
	}

	sum := snap.Summary()
	writeJSON(w, http.StatusOK, refreshResponse{
		Status:    "ok",
		Version:   snap.Version(),
		Year:      snap.Year(),
		Companies: sum.Companies,
		People:    sum.People,
		Contracts: sum.Contracts,
		Warnings:  len(snap.Warnings()),
	})
}
