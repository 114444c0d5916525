package api

import (
	"net/http"
)

// LeagueHandler serves the league overview and the list of loaded years.
type LeagueHandler struct {
	deps Dependencies
}

// NewLeagueHandler creates a new league handler.
func NewLeagueHandler(deps Dependencies) *LeagueHandler {
	return &LeagueHandler{deps: deps}
}

type leagueResponse struct {
	Summary   any              `json:"summary"`
	Standings []companySummary `json:"standings"`
}

// HandleGetLeague handles GET /api/league requests. It returns the
// league-wide summary plus the standings table.
func (h *LeagueHandler) HandleGetLeague(w http.ResponseWriter, r *http.Request) {
	sum, err := h.deps.Summary()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	standings, err := h.deps.Standings()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leagueResponse{
		Summary:   sum,
		Standings: newCompanySummaries(standings),
	})
}

// HandleGetYears handles GET /api/years requests, listing every fiscal year
// present in the load, newest first.
func (h *LeagueHandler) HandleGetYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.deps.Years()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]int{"years": years})
}
