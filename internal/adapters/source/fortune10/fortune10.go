// Package fortune10 serves the bundled Fortune 10 dataset as a record
// source. It needs no network access and is the default data source.
package fortune10

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/okian/execap/internal/adapters/source"
	"github.com/okian/execap/internal/domain/model"
)

const (
	sourceName       = "fortune10"
	defaultSourceURL = "https://www.sec.gov/edgar/browse/"

	// Synthesized director pay, mirrored in the policy rows.
	directorCashRetainer = 150_000
	directorStockGrant   = 175_000
	directorOtherComp    = 25_000
)

// Loader converts the curated dataset into a record set on every Load.
type Loader struct{}

// New creates the bundled-dataset loader.
func New() *Loader {
	return &Loader{}
}

// Name implements source.Source.
func (l *Loader) Name() string { return sourceName }

// Load implements source.Source. The dataset spans fiscal years; the year
// argument scopes the record set, filtering happens downstream. Load fails
// only on a defective dataset literal.
func (l *Loader) Load(_ context.Context, year int) (*model.RecordSet, error) {
	if len(companies) == 0 {
		return nil, fmt.Errorf("%w: no companies in bundled dataset", source.ErrBadDataset)
	}

	rs := &model.RecordSet{
		Source: sourceName,
		Year:   year,
		LoadID: uuid.NewString(),
	}
	seenPeople := make(map[string]struct{})

	for _, entry := range companies {
		if entry.name == "" || entry.ticker == "" {
			return nil, fmt.Errorf("%w: company entry missing name or ticker", source.ErrBadDataset)
		}
		slug := model.Slugify(entry.name)
		fiscalYear := latestYear(entry)

		rs.Companies = append(rs.Companies, model.CompanyRecord{
			Slug:          slug,
			Name:          entry.name,
			Ticker:        entry.ticker,
			Sector:        entry.sector,
			SourceURL:     defaultSourceURL,
			MarketCapUSD:  entry.marketCap,
			RevenueUSD:    entry.revenue,
			CapBudgetUSD:  entry.capBudget,
			FoundedYear:   entry.founded,
			FiscalYearEnd: model.FiscalYearEnd(fiscalYear),
		})

		for _, ex := range entry.execs {
			id := model.Slugify(ex.name)
			if _, ok := seenPeople[id]; !ok {
				seenPeople[id] = struct{}{}
				status := model.StatusActive
				if ex.retired {
					status = model.StatusRetired
				}
				rs.People = append(rs.People, model.PersonRecord{
					ID:           id,
					FullName:     ex.name,
					CurrentTitle: ex.title,
					IsExecutive:  true,
					Status:       status,
				})
			}

			compYear := ex.year
			if compYear == 0 {
				compYear = datasetYear
			}
			rs.ExecutiveComp = append(rs.ExecutiveComp, model.ExecutiveCompensation{
				CompanySlug:     slug,
				PersonID:        id,
				FiscalYear:      compYear,
				SalaryUSD:       ex.salary,
				BonusUSD:        ex.bonus,
				StockAwardsUSD:  ex.stock,
				AllOtherCompUSD: ex.other,
				TotalCompUSD:    ex.salary + ex.bonus + ex.stock + ex.other,
				Source:          fmt.Sprintf("%d Proxy Statement", compYear),
			})
		}

		l.attachBoard(rs, entry, slug, fiscalYear, seenPeople)
	}

	return rs, nil
}

// attachBoard synthesizes director records for board members who are not
// already listed as executives. Pay follows the published policy components.
func (l *Loader) attachBoard(rs *model.RecordSet, entry companyEntry, slug string, fiscalYear int, seenPeople map[string]struct{}) {
	added := false
	for idx, member := range entry.board {
		id := model.Slugify(member.name)
		if _, ok := seenPeople[id]; ok {
			continue
		}
		seenPeople[id] = struct{}{}

		role := member.role
		if role == "" {
			role = "Director"
		}
		rs.People = append(rs.People, model.PersonRecord{
			ID:           id,
			FullName:     member.name,
			CurrentTitle: role,
			IsDirector:   true,
			Status:       model.StatusActive,
		})
		rs.DirectorProfiles = append(rs.DirectorProfiles, model.DirectorProfile{
			CompanySlug:             slug,
			PersonID:                id,
			Role:                    role,
			Independent:             !member.exec,
			LeadIndependentDirector: member.lead,
		})

		other := 0.0
		if idx%3 == 0 {
			other = directorOtherComp
		}
		rs.DirectorComp = append(rs.DirectorComp, model.DirectorCompensation{
			CompanySlug:     slug,
			PersonID:        id,
			FiscalYear:      fiscalYear,
			FeesCashUSD:     directorCashRetainer,
			StockAwardsUSD:  directorStockGrant,
			AllOtherCompUSD: other,
			TotalUSD:        directorCashRetainer + directorStockGrant + other,
			Source:          fmt.Sprintf("%d Proxy Statement (illustrative)", fiscalYear),
		})
		added = true
	}

	if added {
		rs.DirectorPolicies = append(rs.DirectorPolicies,
			model.DirectorCompPolicy{
				CompanySlug: slug,
				Component:   "Annual Cash Retainer",
				AmountUSD:   directorCashRetainer,
				Unit:        "USD",
				Notes:       "Paid quarterly to independent directors.",
			},
			model.DirectorCompPolicy{
				CompanySlug: slug,
				Component:   "Annual RSU Grant",
				AmountUSD:   directorStockGrant,
				Unit:        "RSU",
				Notes:       "Vests on the first anniversary of the grant date.",
			},
		)
	}
}

// latestYear returns the most recent fiscal year among a company's rows.
func latestYear(entry companyEntry) int {
	year := 0
	for _, ex := range entry.execs {
		y := ex.year
		if y == 0 {
			y = datasetYear
		}
		if y > year {
			year = y
		}
	}
	if year == 0 {
		year = datasetYear
	}
	return year
}
