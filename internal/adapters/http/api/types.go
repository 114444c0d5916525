package api

import (
	"github.com/okian/execap/internal/domain/capmath"
	"github.com/okian/execap/internal/domain/league"
)

// Presentation shapes. Domain records carry no JSON tags; the API maps them
// to stable wire types here.

type companySummary struct {
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	Ticker       string          `json:"ticker"`
	Sector       string          `json:"sector,omitempty"`
	MarketCapUSD float64         `json:"market_cap_usd"`
	RevenueUSD   float64         `json:"revenue_usd"`
	Cap          capmath.CapInfo `json:"cap"`
	RosterSize   int             `json:"roster_size"`
	BoardSize    int             `json:"board_size"`
	Absent       bool            `json:"absent"`
}

func newCompanySummary(c *league.Company) companySummary {
	return companySummary{
		Slug:         c.Slug,
		Name:         c.Name,
		Ticker:       c.Ticker,
		Sector:       c.Sector,
		MarketCapUSD: c.MarketCapUSD,
		RevenueUSD:   c.RevenueUSD,
		Cap:          c.Cap,
		RosterSize:   len(c.Roster),
		BoardSize:    len(c.Board),
		Absent:       c.Absent,
	}
}

func newCompanySummaries(cs []*league.Company) []companySummary {
	out := make([]companySummary, len(cs))
	for i, c := range cs {
		out[i] = newCompanySummary(c)
	}
	return out
}

type policyRow struct {
	Component string  `json:"component"`
	AmountUSD float64 `json:"amount_usd"`
	Unit      string  `json:"unit,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

type companyDetail struct {
	companySummary
	SourceURL   string             `json:"source_url,omitempty"`
	FoundedYear int                `json:"founded_year,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	Roster      []league.Contract  `json:"roster"`
	Board       []league.BoardSeat `json:"board"`
	Policies    []policyRow        `json:"director_comp_policy,omitempty"`
	GrantCount  int                `json:"equity_grant_count"`
	HolderCount int                `json:"ownership_record_count"`
}

func newCompanyDetail(c *league.Company) companyDetail {
	d := companyDetail{
		companySummary: newCompanySummary(c),
		SourceURL:      c.SourceURL,
		FoundedYear:    c.FoundedYear,
		Notes:          c.Notes,
		Roster:         c.Roster,
		Board:          c.Board,
		GrantCount:     len(c.Grants),
		HolderCount:    len(c.Ownership),
	}
	for _, p := range c.Policies {
		d.Policies = append(d.Policies, policyRow{
			Component: p.Component,
			AmountUSD: p.AmountUSD,
			Unit:      p.Unit,
			Notes:     p.Notes,
		})
	}
	return d
}

// compBreakdown splits a person's latest-year pay into its components.
type compBreakdown struct {
	FiscalYear int     `json:"fiscal_year"`
	SalaryUSD  float64 `json:"salary_usd"`
	BonusUSD   float64 `json:"bonus_usd"`
	StockUSD   float64 `json:"stock_usd"`
	OtherUSD   float64 `json:"other_usd"`
	TotalUSD   float64 `json:"total_usd"`
}

type personDetail struct {
	ID             string               `json:"id"`
	FullName       string               `json:"full_name"`
	Title          string               `json:"title"`
	Status         string               `json:"status"`
	Education      string               `json:"education,omitempty"`
	IsExecutive    bool                 `json:"is_executive"`
	IsDirector     bool                 `json:"is_director"`
	FreeAgent      bool                 `json:"free_agent"`
	CompanySlug    string               `json:"company_slug,omitempty"`
	CurrentCompUSD float64              `json:"current_comp_usd"`
	Career         league.CareerSummary `json:"career"`
	Breakdown      *compBreakdown       `json:"breakdown,omitempty"`
	Contracts      []league.Contract    `json:"contracts"`
}

func newPersonDetail(p *league.Person) personDetail {
	d := personDetail{
		ID:             p.ID,
		FullName:       p.FullName,
		Title:          p.CurrentTitle,
		Status:         p.Status,
		Education:      p.Education,
		IsExecutive:    p.IsExecutive,
		IsDirector:     p.IsDirector,
		FreeAgent:      p.FreeAgent(),
		CompanySlug:    p.CompanySlug,
		CurrentCompUSD: p.CurrentCompUSD,
		Career:         p.Career,
		Contracts:      p.Contracts,
	}
	if len(p.Contracts) > 0 {
		// contracts are ordered latest year first
		latest := p.Contracts[0].FiscalYear
		b := compBreakdown{FiscalYear: latest}
		for _, c := range p.Contracts {
			if c.FiscalYear != latest {
				continue
			}
			b.SalaryUSD += c.SalaryUSD
			b.BonusUSD += c.BonusUSD
			b.StockUSD += c.StockUSD
			b.OtherUSD += c.OtherUSD
			b.TotalUSD += c.TotalUSD
		}
		d.Breakdown = &b
	}
	return d
}
