// Package service wires a record source to the league builder and publishes
// snapshots for the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/okian/execap/internal/adapters/repository"
	"github.com/okian/execap/internal/adapters/source"
	"github.com/okian/execap/internal/adapters/source/fortune10"
	"github.com/okian/execap/internal/domain/league"
	"github.com/okian/execap/internal/domain/model"
	"github.com/okian/execap/pkg/logger"
	"github.com/okian/execap/pkg/metrics"
)

const defaultYear = 2024

// Service owns the refresh cycle: load records, build a snapshot, swap it in.
// Queries read whatever snapshot is currently published.
type Service struct {
	mu sync.Mutex // serializes Start and Refresh

	store *repository.SnapshotStore
	src   source.Source

	year               int
	capBudget          float64
	luxuryTaxThreshold float64

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the record source.
func WithSource(src source.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.src = src
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithDefaultYear sets the reporting year used when a refresh names none.
func WithDefaultYear(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.year = year
		}
	}
}

// WithCapBudget sets the budget applied to companies disclosing none.
func WithCapBudget(budget float64) Option {
	return func(s *Service) {
		if budget > 0 {
			s.capBudget = budget
		}
	}
}

// WithLuxuryTaxThreshold sets the spend/budget ratio that trips the tax flag.
func WithLuxuryTaxThreshold(threshold float64) Option {
	return func(s *Service) {
		if threshold > 0 {
			s.luxuryTaxThreshold = threshold
		}
	}
}

// New constructs a Service with default configuration: the bundled Fortune 10
// dataset and the current reporting year.
func New(opts ...Option) *Service {
	s := &Service{
		store: repository.NewSnapshotStore(),
		src:   fortune10.New(),
		year:  defaultYear,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start performs the initial refresh. An unreachable source degrades to an
// empty snapshot so the process can come up and serve; any other load error
// is fatal.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting league service",
		logger.String("source", s.src.Name()),
		logger.Int("year", s.year))

	if _, err := s.refresh(ctx, s.year); err != nil {
		if !errors.Is(err, source.ErrSourceUnavailable) {
			return err
		}
		s.logger.Warn(ctx, "initial load failed, serving empty league", logger.Error(err))
		if err := s.publishEmpty(err); err != nil {
			return err
		}
	}

	s.started = true
	return nil
}

// Stop marks the service stopped. There are no background goroutines to
// tear down; kept for symmetry with the process lifecycle.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "league service stopped")
}

// Refresh loads records for year (0 means the configured default), builds a
// new snapshot, and swaps it in atomically. On failure the previously
// published snapshot keeps serving.
func (s *Service) Refresh(ctx context.Context, year int) (*league.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh(ctx, year)
}

func (s *Service) refresh(ctx context.Context, year int) (*league.Snapshot, error) {
	if year == 0 {
		year = s.year
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	start := time.Now()
	rs, err := s.src.Load(ctx, year)
	if err != nil {
		metrics.RecordRefreshFailure()
		s.logger.Error(ctx, "load failed", logger.Int("year", year), logger.Error(err))
		return nil, err
	}

	buildStart := time.Now()
	snap, err := league.Build(rs, year, s.buildOptions()...)
	if err != nil {
		metrics.RecordRefreshFailure()
		s.logger.Error(ctx, "snapshot build failed", logger.Int("year", year), logger.Error(err))
		return nil, err
	}

	if _, err := s.store.Swap(snap, time.Since(buildStart)); err != nil {
		metrics.RecordRefreshFailure()
		return nil, err
	}

	metrics.RecordRefresh()
	metrics.RecordRefreshDuration(float64(time.Since(start).Milliseconds()))
	s.updateGauges(snap)

	s.logger.Info(ctx, "snapshot published",
		logger.String("version", snap.Version()),
		logger.String("load_id", rs.LoadID),
		logger.Int("year", year),
		logger.Int("companies", len(snap.Standings())),
		logger.Int("issues", len(snap.Issues())),
		logger.Int("warnings", len(snap.Warnings())),
		logger.Duration("took", time.Since(start)))

	return snap, nil
}

// publishEmpty swaps in an empty-but-valid snapshot carrying the load error
// as a warning.
func (s *Service) publishEmpty(cause error) error {
	rs := &model.RecordSet{Source: s.src.Name(), Year: s.year}
	rs.AddWarning("initial load failed: %v", cause)

	snap, err := league.Build(rs, s.year, s.buildOptions()...)
	if err != nil {
		return err
	}
	_, err = s.store.Swap(snap, 0)
	return err
}

func (s *Service) buildOptions() []league.Option {
	return []league.Option{
		league.WithCapBudget(s.capBudget),
		league.WithLuxuryTaxThreshold(s.luxuryTaxThreshold),
	}
}

func (s *Service) updateGauges(snap *league.Snapshot) {
	sum := snap.Summary()
	metrics.UpdateCompanies(sum.Companies)
	metrics.UpdatePeople(sum.People)
	metrics.UpdateFreeAgents(sum.FreeAgents)
	metrics.UpdateOverBudgetCompanies(sum.OverBudgetCompanies)
	metrics.UpdateLeagueSpend(sum.TotalSpendUSD)
}

// Snapshot returns the published snapshot.
func (s *Service) Snapshot() (*league.Snapshot, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap, nil
}

// Summary returns the league rollup for the published snapshot.
func (s *Service) Summary() (league.Summary, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return league.Summary{}, err
	}
	return snap.Summary(), nil
}

// Standings returns companies ordered by market cap.
func (s *Service) Standings() ([]*league.Company, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Standings(), nil
}

// Company returns one company's aggregate.
func (s *Service) Company(slug string) (*league.Company, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Company(slug)
}

// Person returns one person's view.
func (s *Service) Person(id string) (*league.Person, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Person(id)
}

// TopCapSpace returns the cap-space leaderboard.
func (s *Service) TopCapSpace(n int) ([]*league.Company, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.TopCapSpace(n), nil
}

// TopContracts returns the contract leaderboard.
func (s *Service) TopContracts(n int) ([]league.Contract, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.TopContracts(n), nil
}

// PositionLeaders returns the leaderboard for a title.
func (s *Service) PositionLeaders(title string, n int) ([]league.Contract, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.PositionLeaders(title, n), nil
}

// FreeAgents returns free agents matching the filter.
func (s *Service) FreeAgents(filter league.FreeAgentFilter) ([]league.FreeAgent, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.FreeAgents(filter), nil
}

// Years returns the fiscal years present in the load.
func (s *Service) Years() ([]int, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Years(), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"source": s.src.Name(),
	}

	snap := s.store.Current()
	if snap == nil {
		stats["ready"] = false
		return stats
	}

	sum := snap.Summary()
	stats["ready"] = true
	stats["snapshotVersion"] = snap.Version()
	stats["snapshotBuiltAt"] = snap.BuiltAt()
	stats["year"] = snap.Year()
	stats["companies"] = sum.Companies
	stats["people"] = sum.People
	stats["contracts"] = sum.Contracts
	stats["freeAgents"] = sum.FreeAgents
	stats["absentCompanies"] = sum.AbsentCompanies
	stats["overBudgetCompanies"] = sum.OverBudgetCompanies
	stats["totalSpendUSD"] = sum.TotalSpendUSD
	stats["issues"] = len(snap.Issues())
	stats["warnings"] = snap.Warnings()

	s.updateGauges(snap)

	return stats
}
