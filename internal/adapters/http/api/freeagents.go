package api

import (
	"net/http"
	"strconv"

	"github.com/okian/execap/internal/domain/league"
)

// FreeAgentsHandler serves people with no active employer.
type FreeAgentsHandler struct {
	deps Dependencies
}

// NewFreeAgentsHandler creates a new free agents handler.
func NewFreeAgentsHandler(deps Dependencies) *FreeAgentsHandler {
	return &FreeAgentsHandler{deps: deps}
}

// HandleGetFreeAgents handles GET /api/free-agents requests. Optional query
// parameters: title filters on the last held title, min_comp on the last
// known compensation.
func (h *FreeAgentsHandler) HandleGetFreeAgents(w http.ResponseWriter, r *http.Request) {
	filter := league.FreeAgentFilter{Title: r.URL.Query().Get("title")}
	if raw := r.URL.Query().Get("min_comp"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		filter.MinLastComp = v
	}
	agents, err := h.deps.FreeAgents(filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":       len(agents),
		"free_agents": agents,
	})
}
