// Package datagen emits CSV fixture datasets in the bucket layout the gcs
// source reads: companies/<slug>/<year>/<table>.csv. The output directory can
// be synced to a bucket as-is.
package datagen

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/okian/execap/internal/domain/model"
)

// Compensation range constants, in USD.
const (
	minSalary        = 900_000
	maxSalary        = 2_500_000
	minStockAward    = 5_000_000
	maxStockAward    = 60_000_000
	minBonus         = 0
	maxBonus         = 8_000_000
	minBudget        = 60_000_000
	maxBudget        = 250_000_000
	directorRetainer = 125_000
	directorStock    = 180_000
	execsPerCompany  = 5
	boardPerCompany  = 6
)

// Error constants.
var (
	ErrNoCompanies = errors.New("company count must be positive")
	ErrNoYears     = errors.New("at least one year is required")
)

// Config controls dataset generation.
type Config struct {
	OutDir    string
	Companies int
	Years     []int
	Seed      int64
}

var sectors = []string{
	"Technology", "Healthcare", "Retail", "Energy",
	"Financial Services", "Industrials", "Telecom",
}

var companyStems = []string{
	"Apex", "Borealis", "Cobalt", "Drift", "Ember", "Fathom", "Granite",
	"Horizon", "Ironwood", "Juniper", "Keystone", "Lumen", "Meridian",
	"Northstar", "Obsidian", "Pinnacle", "Quarry", "Redwood", "Summit",
	"Tundra", "Umbra", "Vantage", "Wavecrest", "Zenith",
}

var companySuffixes = []string{"Holdings", "Industries", "Group", "Corp", "Systems"}

var firstNames = []string{
	"Alex", "Blake", "Casey", "Dana", "Evan", "Frankie", "Gray", "Harper",
	"Indra", "Jordan", "Kai", "Lane", "Morgan", "Noor", "Oakley", "Parker",
	"Quinn", "Reese", "Sage", "Tatum",
}

var lastNames = []string{
	"Abara", "Bennett", "Calloway", "Delgado", "Eriksen", "Fontaine",
	"Grimaldi", "Hale", "Ibrahim", "Jensen", "Kowalski", "Lindqvist",
	"Moreau", "Novak", "Okafor", "Petrov", "Quintana", "Rhee", "Sato",
	"Tanaka", "Ueda", "Vasquez", "Whitfield", "Yamada", "Zielinski",
}

var execTitles = []string{
	"Chief Executive Officer",
	"Chief Financial Officer",
	"Chief Operating Officer",
	"Chief Technology Officer",
	"General Counsel",
}

// Run generates the dataset described by cfg.
func Run(cfg *Config) error {
	if cfg.Companies < 1 {
		return ErrNoCompanies
	}
	if len(cfg.Years) == 0 {
		return ErrNoYears
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	usedNames := map[string]bool{}

	for i := 0; i < cfg.Companies; i++ {
		name := companyName(rng, i)
		slug := model.Slugify(name)
		execs := pickPeople(rng, execsPerCompany, usedNames)
		board := pickPeople(rng, boardPerCompany, usedNames)
		budget := minBudget + rng.Float64()*(maxBudget-minBudget)

		for _, year := range cfg.Years {
			dir := filepath.Join(cfg.OutDir, "companies", slug, strconv.Itoa(year))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
			if err := writeManifest(dir, slug, name, rng, budget); err != nil {
				return err
			}
			if err := writeExecComp(dir, slug, execs, year, rng); err != nil {
				return err
			}
			if err := writeDirectorComp(dir, slug, board, year); err != nil {
				return err
			}
			if err := writeDirectorProfiles(dir, slug, board, year); err != nil {
				return err
			}
			if err := writePolicy(dir, slug); err != nil {
				return err
			}
		}
	}
	return nil
}

func companyName(rng *rand.Rand, i int) string {
	stem := companyStems[i%len(companyStems)]
	suffix := companySuffixes[rng.Intn(len(companySuffixes))]
	if i >= len(companyStems) {
		stem = fmt.Sprintf("%s %d", stem, i/len(companyStems)+1)
	}
	return stem + " " + suffix
}

// pickPeople draws names not yet used anywhere in the run, so no person
// appears at two companies.
func pickPeople(rng *rand.Rand, n int, used map[string]bool) []string {
	out := make([]string, 0, n)
	for len(out) < n {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		if used[name] {
			continue
		}
		used[name] = true
		out = append(out, name)
	}
	return out
}

func writeCSV(dir, file string, rows [][]string) error {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func usd(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

func writeManifest(dir, slug, name string, rng *rand.Rand, budget float64) error {
	marketCap := (20 + rng.Float64()*980) * 1e9
	revenue := marketCap * (0.1 + rng.Float64()*0.4)
	return writeCSV(dir, slug+"_manifest.csv", [][]string{
		{"company_name", "ticker", "sector", "market_cap_usd", "revenue_usd", "cap_budget_usd", "founded_year"},
		{
			name,
			strings.ToUpper(slug[:min(4, len(slug))]),
			sectors[rng.Intn(len(sectors))],
			usd(marketCap),
			usd(revenue),
			usd(budget),
			strconv.Itoa(1900 + rng.Intn(100)),
		},
	})
}

func writeExecComp(dir, slug string, execs []string, year int, rng *rand.Rand) error {
	rows := [][]string{{
		"name", "title", "fiscal_year", "salary_usd", "bonus_usd",
		"stock_awards_usd", "all_other_comp_usd", "total_comp_usd", "status",
	}}
	for i, name := range execs {
		salary := minSalary + rng.Float64()*(maxSalary-minSalary)
		bonus := minBonus + rng.Float64()*(maxBonus-minBonus)
		stock := minStockAward + rng.Float64()*(maxStockAward-minStockAward)
		other := rng.Float64() * 500_000
		rows = append(rows, []string{
			name,
			execTitles[i%len(execTitles)],
			strconv.Itoa(year),
			usd(salary),
			usd(bonus),
			usd(stock),
			usd(other),
			usd(salary + bonus + stock + other),
			"Active",
		})
	}
	return writeCSV(dir, slug+"_executive_compensation.csv", rows)
}

func writeDirectorComp(dir, slug string, board []string, year int) error {
	rows := [][]string{{
		"name", "role", "fiscal_year", "fees_cash_usd", "stock_awards_usd", "total_comp_usd",
	}}
	for i, name := range board {
		role := "Director"
		if i == 0 {
			role = "Chair"
		}
		rows = append(rows, []string{
			name,
			role,
			strconv.Itoa(year),
			usd(directorRetainer),
			usd(directorStock),
			usd(directorRetainer + directorStock),
		})
	}
	return writeCSV(dir, slug+"_director_compensation.csv", rows)
}

func writeDirectorProfiles(dir, slug string, board []string, year int) error {
	rows := [][]string{{"name", "role", "independent", "director_since"}}
	for i, name := range board {
		role := "Director"
		independent := "true"
		if i == 0 {
			role = "Chair"
			independent = "false"
		}
		rows = append(rows, []string{
			name,
			role,
			independent,
			strconv.Itoa(year - 1 - i),
		})
	}
	return writeCSV(dir, slug+"_director_profiles.csv", rows)
}

func writePolicy(dir, slug string) error {
	return writeCSV(dir, slug+"_director_compensation_policy.csv", [][]string{
		{"component", "amount_usd", "unit"},
		{"Annual Cash Retainer", usd(directorRetainer), "per year"},
		{"Annual Equity Grant", usd(directorStock), "per year"},
	})
}
