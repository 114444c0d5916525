// Package league builds immutable, year-scoped snapshots of the executive
// compensation league and answers read-only queries over them.
package league

import (
	"sort"
	"strings"
	"time"

	"github.com/okian/execap/internal/domain/capmath"
	"github.com/okian/execap/internal/domain/model"
)

// Contract is one person's compensation line at a company for the snapshot
// year, enriched for presentation.
type Contract struct {
	PersonID    string  `json:"person_id"`
	PersonName  string  `json:"person_name"`
	Title       string  `json:"title"`
	CompanySlug string  `json:"company_slug"`
	CompanyName string  `json:"company_name"`
	Ticker      string  `json:"ticker"`
	FiscalYear  int     `json:"fiscal_year"`
	SalaryUSD   float64 `json:"salary_usd"`
	BonusUSD    float64 `json:"bonus_usd"`
	StockUSD    float64 `json:"stock_usd"`
	OtherUSD    float64 `json:"other_usd"`
	TotalUSD    float64 `json:"total_usd"`
	CapHitPct   float64 `json:"cap_hit_pct"`
	Director    bool    `json:"director"`
}

// BoardSeat is one director's seat on a company board for the snapshot year.
type BoardSeat struct {
	PersonID    string  `json:"person_id"`
	PersonName  string  `json:"person_name"`
	Role        string  `json:"role"`
	Independent bool    `json:"independent"`
	Lead        bool    `json:"lead_independent"`
	Committees  string  `json:"committees,omitempty"`
	TotalUSD    float64 `json:"total_usd"`
}

// Company aggregates one company's roster and cap figures for the year.
type Company struct {
	model.CompanyRecord
	Cap       capmath.CapInfo              `json:"cap"`
	Roster    []Contract                   `json:"roster"`
	Board     []BoardSeat                  `json:"board"`
	Grants    []model.ExecutiveEquityGrant `json:"grants,omitempty"`
	Ownership []model.BeneficialOwnershipRecord
	Policies  []model.DirectorCompPolicy

	// Absent is set when the company was discovered but carries no
	// compensation rows for the requested year. Cap figures then report a
	// full budget rather than merging another year's data.
	Absent bool `json:"absent"`
}

// CareerSummary aggregates a person's compensation across every year present
// in the load, independent of the snapshot year.
type CareerSummary struct {
	TotalEarningsUSD     float64 `json:"total_earnings_usd"`
	YearsActive          int     `json:"years_active"`
	CompaniesCount       int     `json:"companies_count"`
	HighestSingleYearUSD float64 `json:"highest_single_year_usd"`
	AverageAnnualUSD     float64 `json:"average_annual_usd"`
}

// Person is the person view exposed to the presentation layer.
type Person struct {
	model.PersonRecord
	CompanySlug    string        `json:"company_slug,omitempty"`
	CurrentCompUSD float64       `json:"current_comp_usd"`
	Career         CareerSummary `json:"career"`
	Contracts      []Contract    `json:"contracts"`
}

// FreeAgent is a person with no active employer, with their last known line.
type FreeAgent struct {
	PersonID        string  `json:"person_id"`
	Name            string  `json:"name"`
	Education       string  `json:"education,omitempty"`
	LastTitle       string  `json:"last_title"`
	LastCompanySlug string  `json:"last_company_slug,omitempty"`
	LastCompUSD     float64 `json:"last_comp_usd"`
	LastYear        int     `json:"last_year"`
}

// FreeAgentFilter narrows the free-agent listing. Zero values match all.
type FreeAgentFilter struct {
	Title       string
	MinLastComp float64
}

// Summary is the league-wide rollup for the snapshot year.
type Summary struct {
	Year                int     `json:"year"`
	Companies           int     `json:"companies"`
	People              int     `json:"people"`
	Contracts           int     `json:"contracts"`
	FreeAgents          int     `json:"free_agents"`
	AbsentCompanies     int     `json:"absent_companies"`
	OverBudgetCompanies int     `json:"over_budget_companies"`
	LuxuryTaxCompanies  int     `json:"luxury_tax_companies"`
	TotalSpendUSD       float64 `json:"total_spend_usd"`
	TotalBudgetUSD      float64 `json:"total_budget_usd"`
	AvgUtilizationPct   float64 `json:"avg_utilization_pct"`
}

// Snapshot is an immutable view of the league for one reporting year. Build
// produces a fresh Snapshot; nothing mutates one after publication.
type Snapshot struct {
	version string
	year    int
	source  string
	builtAt time.Time

	companies map[string]*Company
	people    map[string]*Person

	standings  []*Company // market cap desc, name asc
	capSpace   []*Company // cap space desc, name asc
	contracts  []Contract // total desc, name asc
	freeAgents []FreeAgent
	years      []int

	manifest []model.SourceManifestEntry
	issues   []model.LoadIssue
	warnings []string
}

// Version returns the unique id assigned at build time.
func (s *Snapshot) Version() string { return s.version }

// Year returns the reporting year this snapshot was built for.
func (s *Snapshot) Year() int { return s.year }

// Source names the loader that produced the underlying records.
func (s *Snapshot) Source() string { return s.source }

// BuiltAt returns the build timestamp.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

// Company returns the aggregate for slug.
func (s *Snapshot) Company(slug string) (*Company, error) {
	c, ok := s.companies[slug]
	if !ok {
		return nil, ErrCompanyNotFound
	}
	return c, nil
}

// Person returns the person view for id.
func (s *Snapshot) Person(id string) (*Person, error) {
	p, ok := s.people[id]
	if !ok {
		return nil, ErrPersonNotFound
	}
	return p, nil
}

// Standings returns companies ordered by market cap desc, name asc.
func (s *Snapshot) Standings() []*Company {
	out := make([]*Company, len(s.standings))
	copy(out, s.standings)
	return out
}

// TopCapSpace returns at most n companies ordered by cap space desc, ties
// broken by name asc.
func (s *Snapshot) TopCapSpace(n int) []*Company {
	if n <= 0 {
		return nil
	}
	if n > len(s.capSpace) {
		n = len(s.capSpace)
	}
	out := make([]*Company, n)
	copy(out, s.capSpace[:n])
	return out
}

// TopContracts returns at most n contracts ordered by total desc, ties
// broken by person name asc.
func (s *Snapshot) TopContracts(n int) []Contract {
	if n <= 0 {
		return nil
	}
	if n > len(s.contracts) {
		n = len(s.contracts)
	}
	out := make([]Contract, n)
	copy(out, s.contracts[:n])
	return out
}

// PositionLeaders returns at most n contracts whose title matches the query,
// ordered by total desc, ties broken by person name asc. Matching is on the
// normalized title: "ceo" matches "President & CEO".
func (s *Snapshot) PositionLeaders(title string, n int) []Contract {
	if n <= 0 || strings.TrimSpace(title) == "" {
		return nil
	}
	needle := model.Slugify(title)
	out := make([]Contract, 0, n)
	for _, c := range s.contracts { // already in leaderboard order
		if titleMatches(c.Title, needle) {
			out = append(out, c)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// titleMatches reports whether the normalized title contains needle as an
// underscore-delimited run.
func titleMatches(title, needle string) bool {
	norm := model.Slugify(title)
	if norm == needle {
		return true
	}
	return strings.Contains("_"+norm+"_", "_"+needle+"_")
}

// FreeAgents returns free agents matching the filter, ordered by last
// compensation desc, ties broken by name asc.
func (s *Snapshot) FreeAgents(filter FreeAgentFilter) []FreeAgent {
	needle := ""
	if strings.TrimSpace(filter.Title) != "" {
		needle = model.Slugify(filter.Title)
	}
	out := make([]FreeAgent, 0, len(s.freeAgents))
	for _, fa := range s.freeAgents {
		if fa.LastCompUSD < filter.MinLastComp {
			continue
		}
		if needle != "" && !titleMatches(fa.LastTitle, needle) {
			continue
		}
		out = append(out, fa)
	}
	return out
}

// Summary returns the league-wide rollup.
func (s *Snapshot) Summary() Summary {
	sum := Summary{
		Year:       s.year,
		Companies:  len(s.companies),
		People:     len(s.people),
		Contracts:  len(s.contracts),
		FreeAgents: len(s.freeAgents),
	}
	for _, c := range s.standings {
		sum.TotalSpendUSD += c.Cap.SpendUSD
		sum.TotalBudgetUSD += c.Cap.BudgetUSD
		if c.Cap.OverBudget {
			sum.OverBudgetCompanies++
		}
		if c.Cap.LuxuryTax {
			sum.LuxuryTaxCompanies++
		}
		if c.Absent {
			sum.AbsentCompanies++
		}
	}
	if sum.TotalBudgetUSD > 0 {
		sum.AvgUtilizationPct = sum.TotalSpendUSD / sum.TotalBudgetUSD * 100
	}
	return sum
}

// Years returns every fiscal year present in the load, descending.
func (s *Snapshot) Years() []int {
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

// Manifest returns the provenance entries recorded by the loader.
func (s *Snapshot) Manifest() []model.SourceManifestEntry {
	out := make([]model.SourceManifestEntry, len(s.manifest))
	copy(out, s.manifest)
	return out
}

// Issues returns the rows skipped during the load.
func (s *Snapshot) Issues() []model.LoadIssue {
	out := make([]model.LoadIssue, len(s.issues))
	copy(out, s.issues)
	return out
}

// Warnings returns the per-company load warnings.
func (s *Snapshot) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// sortContracts orders by total desc, person name asc.
func sortContracts(cs []Contract) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].TotalUSD != cs[j].TotalUSD {
			return cs[i].TotalUSD > cs[j].TotalUSD
		}
		return cs[i].PersonName < cs[j].PersonName
	})
}
