package api

import (
	"net/http"
)

// LeaderboardsHandler serves the ranked views: cap space, top contracts and
// per-position leaders.
type LeaderboardsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewLeaderboardsHandler creates a new leaderboards handler. maxLimit caps
// the limit query parameter on every ranked endpoint.
func NewLeaderboardsHandler(deps Dependencies, maxLimit int) *LeaderboardsHandler {
	return &LeaderboardsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleGetCapSpace handles GET /api/cap-space requests, ranking companies by
// remaining budget.
func (h *LeaderboardsHandler) HandleGetCapSpace(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	companies, err := h.deps.TopCapSpace(limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(companies),
		"companies": newCompanySummaries(companies),
	})
}

// HandleGetContracts handles GET /api/contracts requests, ranking executive
// pay lines for the snapshot year.
func (h *LeaderboardsHandler) HandleGetContracts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	contracts, err := h.deps.TopContracts(limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(contracts),
		"contracts": contracts,
	})
}

// HandleGetLeaders handles GET /api/leaders?title=... requests, ranking pay
// lines whose title matches the query.
func (h *LeaderboardsHandler) HandleGetLeaders(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingTitle)
		return
	}
	limit, err := parseLimit(r, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	contracts, err := h.deps.PositionLeaders(title, limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"title":   title,
		"count":   len(contracts),
		"leaders": contracts,
	})
}
