// Package model contains domain records passed between layers.
package model

import "time"

// Table identifies a fact-table kind. The set is closed; loaders reject
// unrecognized tables instead of duck-typing rows.
type Table string

// Fact-table kinds matched against the object naming convention
// companies/<slug>/<year>/<slug>_<year>_<table>.csv.
const (
	TableExecutiveCompensation Table = "executive_compensation"
	TableExecutiveEquityGrant  Table = "executive_equity_grants"
	TableBeneficialOwnership   Table = "beneficial_ownership"
	TableDirectorCompensation  Table = "director_compensation"
	TableDirectorProfile       Table = "director_profiles"
	TableDirectorCompPolicy    Table = "director_comp_policy"
	TableSourceManifest        Table = "manifest"
)

// Person status values. Anything other than StatusActive marks a free agent.
const (
	StatusActive  = "Active"
	StatusRetired = "Retired"
)

// CompanyRecord holds company identity and the financial snapshot read from
// the per-year manifest file.
type CompanyRecord struct {
	Slug          string
	Name          string
	Ticker        string
	Sector        string
	SourceURL     string
	Notes         string
	MarketCapUSD  float64
	RevenueUSD    float64
	CapBudgetUSD  float64
	FoundedYear   int
	FiscalYearEnd time.Time
}

// PersonRecord holds an executive or director identity.
type PersonRecord struct {
	ID              string // slug-style identifier
	FullName        string
	CurrentTitle    string
	IsExecutive     bool
	IsDirector      bool
	Education       string
	Status          string // StatusActive, StatusRetired
	YearsExperience int
}

// FreeAgent reports whether the person is available (not active anywhere).
func (p PersonRecord) FreeAgent() bool {
	return p.Status != "" && p.Status != StatusActive
}

// ExecutiveCompensation is one summary-compensation-table row for a person
// and fiscal year.
type ExecutiveCompensation struct {
	CompanySlug           string
	PersonID              string
	FiscalYear            int
	SalaryUSD             float64
	BonusUSD              float64
	StockAwardsUSD        float64
	OptionAwardsUSD       float64
	NonEquityIncentiveUSD float64
	PensionChangeUSD      float64
	AllOtherCompUSD       float64
	TotalCompUSD          float64
	Source                string
}

// Total returns the disclosed total, or the component sum when the filing
// leaves the total column blank.
func (c ExecutiveCompensation) Total() float64 {
	if c.TotalCompUSD > 0 {
		return c.TotalCompUSD
	}
	return c.SalaryUSD + c.BonusUSD + c.StockAwardsUSD + c.OptionAwardsUSD +
		c.NonEquityIncentiveUSD + c.PensionChangeUSD + c.AllOtherCompUSD
}

// ExecutiveEquityGrant is one plan-based-awards row.
type ExecutiveEquityGrant struct {
	CompanySlug           string
	PersonID              string
	FiscalYear            int
	GrantDate             time.Time
	AwardType             string // RSU, PSU, Option
	ThresholdUnits        int64
	TargetUnits           int64
	MaxUnits              int64
	GrantDateFairValueUSD float64
	VestingScheduleShort  string
	Source                string
}

// BeneficialOwnershipRecord is one beneficial-ownership-table row.
type BeneficialOwnershipRecord struct {
	CompanySlug       string
	PersonID          string
	Role              string
	FiscalYear        int
	TotalShares       int64
	SoleVotingPower   int64
	SharedVotingPower int64
	PercentOfClass    float64
	AsOfDate          time.Time
	Notes             string
}

// DirectorCompensation is one director-compensation-table row.
type DirectorCompensation struct {
	CompanySlug     string
	PersonID        string
	FiscalYear      int
	FeesCashUSD     float64
	StockAwardsUSD  float64
	AllOtherCompUSD float64
	TotalUSD        float64
	Source          string
}

// Total returns the disclosed total, or the component sum when absent.
func (d DirectorCompensation) Total() float64 {
	if d.TotalUSD > 0 {
		return d.TotalUSD
	}
	return d.FeesCashUSD + d.StockAwardsUSD + d.AllOtherCompUSD
}

// DirectorProfile describes board membership attributes for a person.
type DirectorProfile struct {
	CompanySlug             string
	PersonID                string
	Role                    string
	Independent             bool
	DirectorSince           int
	LeadIndependentDirector bool
	Committees              string
	PrimaryOccupation       string
	OtherPublicBoards       string
}

// DirectorCompPolicy is one component of a company's director pay policy.
type DirectorCompPolicy struct {
	CompanySlug string
	Component   string
	AmountUSD   float64
	Unit        string
	Notes       string
}

// SourceManifestEntry records provenance for one successfully ingested file.
type SourceManifestEntry struct {
	CompanySlug string
	Path        string
	Table       Table
	Year        int
	Checksum    string // sha256 of the raw bytes
	Rows        int
	IngestedAt  time.Time
}
