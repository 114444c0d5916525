package league

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/okian/execap/internal/domain/capmath"
	"github.com/okian/execap/internal/domain/dedupe"
	"github.com/okian/execap/internal/domain/model"
)

// Option applies a configuration option to Build.
type Option func(*builder)

// WithCapBudget sets the default cap budget for companies disclosing none.
func WithCapBudget(budget float64) Option {
	return func(b *builder) {
		if budget > 0 {
			b.capOpts = append(b.capOpts, capmath.WithDefaultBudget(budget))
		}
	}
}

// WithLuxuryTaxThreshold sets the luxury-tax trip ratio.
func WithLuxuryTaxThreshold(threshold float64) Option {
	return func(b *builder) {
		if threshold > 0 {
			b.capOpts = append(b.capOpts, capmath.WithLuxuryTaxThreshold(threshold))
		}
	}
}

type builder struct {
	capOpts []capmath.Option
}

// careerAccum collects one person's compensation across all loaded years.
type careerAccum struct {
	byYear    map[int]float64
	companies map[string]struct{}
}

// Build groups records by company for the requested year, computes derived
// cap figures, and returns a fresh immutable Snapshot. Rows that violate
// referential integrity or duplicate a person/year figure are skipped and
// recorded as issues; they never abort the build.
func Build(rs *model.RecordSet, year int, opts ...Option) (*Snapshot, error) {
	if rs == nil {
		return nil, ErrNilRecords
	}

	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	calc := capmath.New(b.capOpts...)

	s := &Snapshot{
		version:   uuid.NewString(),
		year:      year,
		source:    rs.Source,
		builtAt:   time.Now().UTC(),
		companies: make(map[string]*Company, len(rs.Companies)),
		people:    make(map[string]*Person, len(rs.People)),
		manifest:  append([]model.SourceManifestEntry(nil), rs.Manifest...),
		issues:    append([]model.LoadIssue(nil), rs.Issues...),
		warnings:  append([]string(nil), rs.Warnings...),
	}

	for _, cr := range rs.Companies {
		s.companies[cr.Slug] = &Company{CompanyRecord: cr}
	}
	for _, pr := range rs.People {
		s.people[pr.ID] = &Person{PersonRecord: pr}
	}

	seen := dedupe.NewKeyedSet()
	careers := make(map[string]*careerAccum)
	yearSet := make(map[int]struct{})

	career := func(personID string, y int, total float64, companySlug string) {
		acc, ok := careers[personID]
		if !ok {
			acc = &careerAccum{byYear: make(map[int]float64), companies: make(map[string]struct{})}
			careers[personID] = acc
		}
		acc.byYear[y] += total
		acc.companies[companySlug] = struct{}{}
	}

	// execRows and directorRows hold this-year rows per company, pending cap
	// figures before contracts are materialized.
	execRows := make(map[string][]model.ExecutiveCompensation)
	directorRows := make(map[string][]model.DirectorCompensation)

	for _, row := range rs.ExecutiveComp {
		company, ok := s.companies[row.CompanySlug]
		if !ok {
			s.addIssue(row.CompanySlug, model.TableExecutiveCompensation, "row references unknown company %q", row.CompanySlug)
			continue
		}
		if _, ok := s.people[row.PersonID]; !ok {
			s.addIssue(row.CompanySlug, model.TableExecutiveCompensation, "row references unknown person %q", row.PersonID)
			continue
		}
		if seen.SeenAndRecord(dedupe.PersonYearKey(string(model.TableExecutiveCompensation), row.PersonID, row.FiscalYear)) {
			s.addIssue(row.CompanySlug, model.TableExecutiveCompensation, "duplicate compensation figure for %q in %d", row.PersonID, row.FiscalYear)
			continue
		}
		yearSet[row.FiscalYear] = struct{}{}
		career(row.PersonID, row.FiscalYear, row.Total(), row.CompanySlug)
		if row.FiscalYear == year {
			execRows[company.Slug] = append(execRows[company.Slug], row)
		}
	}

	for _, row := range rs.DirectorComp {
		company, ok := s.companies[row.CompanySlug]
		if !ok {
			s.addIssue(row.CompanySlug, model.TableDirectorCompensation, "row references unknown company %q", row.CompanySlug)
			continue
		}
		if _, ok := s.people[row.PersonID]; !ok {
			s.addIssue(row.CompanySlug, model.TableDirectorCompensation, "row references unknown person %q", row.PersonID)
			continue
		}
		if seen.SeenAndRecord(dedupe.PersonYearKey(string(model.TableDirectorCompensation), row.PersonID, row.FiscalYear)) {
			s.addIssue(row.CompanySlug, model.TableDirectorCompensation, "duplicate director figure for %q in %d", row.PersonID, row.FiscalYear)
			continue
		}
		yearSet[row.FiscalYear] = struct{}{}
		career(row.PersonID, row.FiscalYear, row.Total(), row.CompanySlug)
		if row.FiscalYear == year {
			directorRows[company.Slug] = append(directorRows[company.Slug], row)
		}
	}

	// Supporting tables attach to companies without affecting cap math.
	for _, g := range rs.EquityGrants {
		if c, ok := s.companies[g.CompanySlug]; ok && g.FiscalYear == year {
			c.Grants = append(c.Grants, g)
		}
	}
	for _, o := range rs.Ownership {
		if c, ok := s.companies[o.CompanySlug]; ok {
			c.Ownership = append(c.Ownership, o)
		}
	}
	for _, p := range rs.DirectorPolicies {
		if c, ok := s.companies[p.CompanySlug]; ok {
			c.Policies = append(c.Policies, p)
		}
	}

	profiles := make(map[string]model.DirectorProfile, len(rs.DirectorProfiles))
	for _, dp := range rs.DirectorProfiles {
		profiles[dp.CompanySlug+"|"+dp.PersonID] = dp
	}

	// Second pass: company spend is known, so contracts can carry cap hits.
	for slug, company := range s.companies {
		spend := 0.0
		for _, row := range execRows[slug] {
			spend += row.Total()
		}
		for _, row := range directorRows[slug] {
			spend += row.Total()
		}
		company.Cap = calc.Derive(company.CapBudgetUSD, spend)
		company.Absent = len(execRows[slug]) == 0 && len(directorRows[slug]) == 0

		for _, row := range execRows[slug] {
			person := s.people[row.PersonID]
			contract := Contract{
				PersonID:    row.PersonID,
				PersonName:  person.FullName,
				Title:       person.CurrentTitle,
				CompanySlug: slug,
				CompanyName: company.Name,
				Ticker:      company.Ticker,
				FiscalYear:  row.FiscalYear,
				SalaryUSD:   row.SalaryUSD,
				BonusUSD:    row.BonusUSD + row.NonEquityIncentiveUSD,
				StockUSD:    row.StockAwardsUSD + row.OptionAwardsUSD,
				OtherUSD:    row.AllOtherCompUSD + row.PensionChangeUSD,
				TotalUSD:    row.Total(),
				CapHitPct:   calc.CapHitPct(company.CapBudgetUSD, row.Total()),
			}
			company.Roster = append(company.Roster, contract)
			person.Contracts = append(person.Contracts, contract)
			person.CurrentCompUSD += contract.TotalUSD
			person.CompanySlug = slug
			s.contracts = append(s.contracts, contract)
		}
		sortContracts(company.Roster)

		for _, row := range directorRows[slug] {
			person := s.people[row.PersonID]
			seat := BoardSeat{
				PersonID:   row.PersonID,
				PersonName: person.FullName,
				Role:       "Director",
				TotalUSD:   row.Total(),
			}
			if dp, ok := profiles[slug+"|"+row.PersonID]; ok {
				if dp.Role != "" {
					seat.Role = dp.Role
				}
				seat.Independent = dp.Independent
				seat.Lead = dp.LeadIndependentDirector
				seat.Committees = dp.Committees
			}
			company.Board = append(company.Board, seat)
			person.CurrentCompUSD += seat.TotalUSD
			if person.CompanySlug == "" {
				person.CompanySlug = slug
			}
		}
		sort.Slice(company.Board, func(i, j int) bool {
			if company.Board[i].TotalUSD != company.Board[j].TotalUSD {
				return company.Board[i].TotalUSD > company.Board[j].TotalUSD
			}
			return company.Board[i].PersonName < company.Board[j].PersonName
		})
	}

	// Career summaries across every loaded year.
	for id, acc := range careers {
		person := s.people[id]
		summary := CareerSummary{
			YearsActive:    len(acc.byYear),
			CompaniesCount: len(acc.companies),
		}
		for _, total := range acc.byYear {
			summary.TotalEarningsUSD += total
			if total > summary.HighestSingleYearUSD {
				summary.HighestSingleYearUSD = total
			}
		}
		if summary.YearsActive > 0 {
			summary.AverageAnnualUSD = summary.TotalEarningsUSD / float64(summary.YearsActive)
		}
		person.Career = summary
		sort.Slice(person.Contracts, func(i, j int) bool {
			a, b := person.Contracts[i], person.Contracts[j]
			if a.FiscalYear != b.FiscalYear {
				return a.FiscalYear > b.FiscalYear
			}
			return a.TotalUSD > b.TotalUSD
		})
	}

	s.buildIndexes(careers, yearSet)

	return s, nil
}

// addIssue records a referential or duplicate-row problem found at build time.
func (s *Snapshot) addIssue(file string, table model.Table, format string, args ...any) {
	s.issues = append(s.issues, model.LoadIssue{
		File:   file,
		Table:  table,
		Reason: fmt.Sprintf(format, args...),
	})
}

// buildIndexes sorts the derived views once so queries stay allocation-light.
func (s *Snapshot) buildIndexes(careers map[string]*careerAccum, yearSet map[int]struct{}) {
	for _, c := range s.companies {
		s.standings = append(s.standings, c)
		s.capSpace = append(s.capSpace, c)
	}
	sort.Slice(s.standings, func(i, j int) bool {
		if s.standings[i].MarketCapUSD != s.standings[j].MarketCapUSD {
			return s.standings[i].MarketCapUSD > s.standings[j].MarketCapUSD
		}
		return s.standings[i].Name < s.standings[j].Name
	})
	sort.Slice(s.capSpace, func(i, j int) bool {
		if s.capSpace[i].Cap.CapSpaceUSD != s.capSpace[j].Cap.CapSpaceUSD {
			return s.capSpace[i].Cap.CapSpaceUSD > s.capSpace[j].Cap.CapSpaceUSD
		}
		return s.capSpace[i].Name < s.capSpace[j].Name
	})
	sortContracts(s.contracts)

	for id, p := range s.people {
		if !p.FreeAgent() {
			continue
		}
		fa := FreeAgent{PersonID: id, Name: p.FullName, Education: p.Education, LastTitle: p.CurrentTitle}
		if acc, ok := careers[id]; ok {
			for y, total := range acc.byYear {
				if y > fa.LastYear {
					fa.LastYear = y
					fa.LastCompUSD = total
				}
			}
		}
		if p.CompanySlug != "" {
			fa.LastCompanySlug = p.CompanySlug
		}
		s.freeAgents = append(s.freeAgents, fa)
	}
	sort.Slice(s.freeAgents, func(i, j int) bool {
		if s.freeAgents[i].LastCompUSD != s.freeAgents[j].LastCompUSD {
			return s.freeAgents[i].LastCompUSD > s.freeAgents[j].LastCompUSD
		}
		return s.freeAgents[i].Name < s.freeAgents[j].Name
	})

	for y := range yearSet {
		s.years = append(s.years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.years)))
}
