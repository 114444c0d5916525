// Package gcs loads company CSV datasets stored in an object bucket under
// companies/<slug>/<year>/. Malformed rows and missing files degrade to
// issues and warnings; only an unreachable bucket fails the load.
package gcs

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/execap/internal/adapters/prefetch"
	"github.com/okian/execap/internal/adapters/source"
	"github.com/okian/execap/internal/domain/dedupe"
	"github.com/okian/execap/internal/domain/model"
	"github.com/okian/execap/pkg/logger"
	"github.com/okian/execap/pkg/metrics"
)

const (
	sourceName    = "gcs"
	companyPrefix = "companies/"
	csvSuffix     = ".csv"

	defaultRetries = 3
	defaultBackoff = 250 * time.Millisecond
	defaultWorkers = 4
)

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithRetries sets how many times a bucket operation is attempted.
func WithRetries(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.retries = n
		}
	}
}

// WithBackoff sets the initial retry delay. Each retry doubles it.
func WithBackoff(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.backoff = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithWorkers sets how many objects are fetched concurrently.
func WithWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// Loader implements source.Source over an ObjectStore.
type Loader struct {
	store   ObjectStore
	retries int
	backoff time.Duration
	workers int
	log     logger.Logger
}

// New creates a bucket loader with configuration options.
func New(store ObjectStore, opts ...Option) *Loader {
	l := &Loader{
		store:   store,
		retries: defaultRetries,
		backoff: defaultBackoff,
		workers: defaultWorkers,
		log:     logger.Named(sourceName),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Name implements source.Source.
func (l *Loader) Name() string { return sourceName }

// Load implements source.Source. A company without data for the requested
// year falls back to its latest year; the snapshot build filters by year, so
// such a company shows up as present but absent.
func (l *Loader) Load(ctx context.Context, year int) (*model.RecordSet, error) {
	rs := &model.RecordSet{
		Source: sourceName,
		Year:   year,
		LoadID: uuid.NewString(),
	}

	names, err := l.list(ctx, companyPrefix)
	if err != nil {
		return nil, err
	}

	folders := indexFolders(names)
	if len(folders) == 0 {
		rs.AddWarning("bucket has no company folders under %s", companyPrefix)
		l.log.Warn(ctx, "empty bucket", logger.String("load_id", rs.LoadID))
		return rs, nil
	}

	st := &loadState{
		rs:     rs,
		people: make(map[string]int),
		seen:   dedupe.NewKeyedSet(),
	}

	slugs := make([]string, 0, len(folders))
	for slug := range folders {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	type plan struct {
		slug  string
		year  int
		files []string
	}
	plans := make([]plan, 0, len(slugs))
	var wanted []string
	for _, slug := range slugs {
		target, files := pickYear(folders[slug], year)
		if target == 0 {
			rs.AddWarning("no year folders for %s", slug)
			continue
		}
		if target != year {
			rs.AddWarning("no %d data for %s, using %d", year, slug, target)
		}
		plans = append(plans, plan{slug: slug, year: target, files: files})
		wanted = append(wanted, files...)
	}

	// Fetch every object up front; imports stay sequential so dedupe and
	// ordering are deterministic.
	fetched, err := prefetch.New(l.read, prefetch.WithWorkers(l.workers)).FetchAll(ctx, wanted)
	if err != nil {
		return nil, err
	}

	for _, p := range plans {
		l.loadCompanyYear(ctx, st, p.slug, p.year, p.files, fetched)
	}

	for range rs.Warnings {
		metrics.RecordLoadWarning()
	}
	l.log.Info(ctx, "bucket load complete",
		logger.String("load_id", rs.LoadID),
		logger.Int("companies", len(rs.Companies)),
		logger.Int("rows", rs.RowCount()),
		logger.Int("issues", len(rs.Issues)),
		logger.Int("warnings", len(rs.Warnings)))

	return rs, nil
}

// loadCompanyYear ingests every recognized CSV in one company/year folder
// from the prefetched objects.
func (l *Loader) loadCompanyYear(ctx context.Context, st *loadState, slug string, year int, files []string, fetched map[string][]byte) {
	var manifest *table
	for _, name := range files {
		if strings.HasSuffix(strings.ToLower(name), "_manifest"+csvSuffix) {
			manifest = l.ingestTable(st, name, fetched[name], model.TableSourceManifest, slug, year)
			break
		}
	}
	if manifest == nil {
		st.rs.AddWarning("manifest not found for %s %d, using defaults", slug, year)
	}
	st.ensureCompany(slug, year, manifest)

	recognized := 0
	compSeen := false
	for _, name := range files {
		base := strings.ToLower(name[strings.LastIndex(name, "/")+1:])
		if !strings.HasSuffix(base, csvSuffix) || strings.HasSuffix(base, "_manifest"+csvSuffix) {
			continue
		}

		kind, ok := classify(base)
		if !ok {
			l.log.Debug(ctx, "skipping unrecognized file", logger.String("object", name))
			continue
		}

		t := l.ingestTable(st, name, fetched[name], kind, slug, year)
		if t == nil {
			continue
		}

		switch kind {
		case model.TableExecutiveCompensation:
			st.importExecComp(t, slug, year)
			compSeen = true
		case model.TableExecutiveEquityGrant:
			st.importEquityGrants(t, slug, year)
		case model.TableBeneficialOwnership:
			st.importOwnership(t, slug, year)
		case model.TableDirectorCompensation:
			st.importDirectorComp(t, slug, year)
		case model.TableDirectorProfile:
			st.importDirectorProfiles(t, slug)
		case model.TableDirectorCompPolicy:
			st.importDirectorPolicies(t, slug)
		}
		recognized++
	}

	if recognized == 0 {
		st.rs.AddWarning("no recognized CSVs for %s %d", slug, year)
	} else if !compSeen {
		st.rs.AddWarning("no executive compensation file for %s %d", slug, year)
	}
}

// ingestTable parses one prefetched object as CSV and records a provenance
// entry. An unparseable file degrades to a warning and nil table.
func (l *Loader) ingestTable(st *loadState, name string, data []byte, kind model.Table, slug string, year int) *table {
	t, err := parseCSV(name, data)
	if err != nil {
		st.rs.AddWarning("unparseable CSV %s: %v", name, err)
		return nil
	}

	st.rs.Manifest = append(st.rs.Manifest, model.SourceManifestEntry{
		CompanySlug: slug,
		Path:        name,
		Table:       kind,
		Year:        year,
		Checksum:    checksum(data),
		Rows:        len(t.rows),
		IngestedAt:  time.Now().UTC(),
	})
	metrics.RecordFileIngested()
	return t
}

// classify maps a file base name to its fact table. Policy is checked before
// compensation: "director_compensation_policy" contains both patterns.
func classify(base string) (model.Table, bool) {
	switch {
	case strings.Contains(base, "director_comp_policy"),
		strings.Contains(base, "director_compensation_policy"):
		return model.TableDirectorCompPolicy, true
	case strings.Contains(base, "executive_compensation"):
		return model.TableExecutiveCompensation, true
	case strings.Contains(base, "executive_equity_grants"):
		return model.TableExecutiveEquityGrant, true
	case strings.Contains(base, "beneficial_ownership"):
		return model.TableBeneficialOwnership, true
	case strings.Contains(base, "director_compensation"):
		return model.TableDirectorCompensation, true
	case strings.Contains(base, "director_profiles"), strings.Contains(base, "directors_profiles"):
		return model.TableDirectorProfile, true
	}
	return "", false
}

// list wraps store.List with the retry policy.
func (l *Loader) list(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	err := l.retry(ctx, fmt.Sprintf("list %s", prefix), func() error {
		var err error
		names, err = l.store.List(ctx, prefix)
		return err
	})
	return names, err
}

// read wraps store.Read with the retry policy.
func (l *Loader) read(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := l.retry(ctx, fmt.Sprintf("read %s", name), func() error {
		var err error
		data, err = l.store.Read(ctx, name)
		return err
	})
	return data, err
}

// retry runs op up to the configured attempt count with exponential backoff.
// Exhaustion maps to ErrSourceUnavailable and fails the whole load.
func (l *Loader) retry(ctx context.Context, op string, fn func() error) error {
	backoff := l.backoff
	var lastErr error

	for attempt := 1; attempt <= l.retries; attempt++ {
		start := time.Now()
		lastErr = fn()
		metrics.RecordStorageFetchLatency(float64(time.Since(start).Milliseconds()))
		if lastErr == nil {
			return nil
		}

		if attempt < l.retries {
			metrics.RecordStorageFetchRetry()
			l.log.Warn(ctx, "bucket operation failed, retrying",
				logger.String("op", op),
				logger.Int("attempt", attempt),
				logger.Error(lastErr))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}

	metrics.RecordStorageFetchFailure()
	return fmt.Errorf("%w: %s after %d attempts: %v", source.ErrSourceUnavailable, op, l.retries, lastErr)
}

// indexFolders groups object names into slug -> year -> files.
func indexFolders(names []string) map[string]map[int][]string {
	folders := make(map[string]map[int][]string)
	for _, name := range names {
		parts := strings.Split(name, "/")
		if len(parts) < 4 || parts[0] != "companies" || parts[1] == "" {
			continue
		}
		if len(parts[2]) != 4 {
			continue
		}
		year, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		slug := parts[1]
		if folders[slug] == nil {
			folders[slug] = make(map[int][]string)
		}
		folders[slug][year] = append(folders[slug][year], name)
	}
	return folders
}

// pickYear prefers the requested year, falling back to the latest available.
func pickYear(years map[int][]string, want int) (int, []string) {
	if files, ok := years[want]; ok {
		return want, files
	}
	best := 0
	for y := range years {
		if y > best {
			best = y
		}
	}
	if best == 0 {
		return 0, nil
	}
	return best, years[best]
}
