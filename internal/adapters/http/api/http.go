// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	service "github.com/okian/execap/internal/app"
	"github.com/okian/execap/internal/domain/league"
)

// Dependencies bundles the read and refresh operations handlers need.
// Using an interface bundle keeps the handler layer loosely coupled to the
// service implementation.
type Dependencies interface {
	Summary() (league.Summary, error)
	Standings() ([]*league.Company, error)
	Company(slug string) (*league.Company, error)
	Person(id string) (*league.Person, error)
	TopCapSpace(n int) ([]*league.Company, error)
	TopContracts(n int) ([]league.Contract, error)
	PositionLeaders(title string, n int) ([]league.Contract, error)
	FreeAgents(filter league.FreeAgentFilter) ([]league.FreeAgent, error)
	Years() ([]int, error)
	Refresh(ctx context.Context, year int) (*league.Snapshot, error)
}

// defaultLimit applies when a leaderboard request names no limit.
const defaultLimit = 10

// Server wires HTTP routes for the league API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	leagueHandler    *LeagueHandler
	companiesHandler *CompaniesHandler
	peopleHandler    *PeopleHandler
	boardsHandler    *LeaderboardsHandler
	freeAgentHandler *FreeAgentsHandler
	refreshHandler   *RefreshHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates an API server with all handlers. maxLimit caps every
// leaderboard limit parameter.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		leagueHandler:    NewLeagueHandler(deps),
		companiesHandler: NewCompaniesHandler(deps),
		peopleHandler:    NewPeopleHandler(deps),
		boardsHandler:    NewLeaderboardsHandler(deps, maxLimit),
		freeAgentHandler: NewFreeAgentsHandler(deps),
		refreshHandler:   NewRefreshHandler(deps),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /dashboard", s.dashboardHandler.HandleDashboard)

	mux.HandleFunc("GET /api/league", MetricsMiddleware(s.leagueHandler.HandleGetLeague, "league"))
	mux.HandleFunc("GET /api/companies", MetricsMiddleware(s.companiesHandler.HandleListCompanies, "companies"))
	mux.HandleFunc("GET /api/companies/{slug}", MetricsMiddleware(s.companiesHandler.HandleGetCompany, "company_detail"))
	mux.HandleFunc("GET /api/people/{id}", MetricsMiddleware(s.peopleHandler.HandleGetPerson, "person_detail"))
	mux.HandleFunc("GET /api/cap-space", MetricsMiddleware(s.boardsHandler.HandleGetCapSpace, "cap_space"))
	mux.HandleFunc("GET /api/contracts", MetricsMiddleware(s.boardsHandler.HandleGetContracts, "contracts"))
	mux.HandleFunc("GET /api/leaders", MetricsMiddleware(s.boardsHandler.HandleGetLeaders, "leaders"))
	mux.HandleFunc("GET /api/free-agents", MetricsMiddleware(s.freeAgentHandler.HandleGetFreeAgents, "free_agents"))
	mux.HandleFunc("GET /api/years", MetricsMiddleware(s.leagueHandler.HandleGetYears, "years"))
	mux.HandleFunc("POST /api/refresh", MetricsMiddleware(s.refreshHandler.HandleRefresh, "refresh"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain error kinds to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, league.ErrCompanyNotFound), errors.Is(err, league.ErrPersonNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, service.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// parseLimit reads ?limit=N, applying the default and the configured cap.
func parseLimit(r *http.Request, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		if defaultLimit > maxLimit {
			return maxLimit, nil
		}
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, ErrBadRequest
	}
	if n > maxLimit {
		return 0, ErrLimitExceeded
	}
	return n, nil
}
