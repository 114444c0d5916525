package gcs

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/execap/internal/domain/dedupe"
	"github.com/okian/execap/internal/domain/model"
	"github.com/okian/execap/pkg/metrics"
)

// table is one parsed CSV: a lowercased header index plus the data rows.
type table struct {
	file   string
	header map[string]int
	rows   [][]string
}

func parseCSV(file string, data []byte) (*table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	t := &table{file: file, header: make(map[string]int)}
	if len(records) == 0 {
		return t, nil
	}
	for i, h := range records[0] {
		t.header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	t.rows = records[1:]
	return t, nil
}

// get returns the first non-blank cell among the aliased columns.
func (t *table) get(row []string, keys ...string) string {
	for _, key := range keys {
		if i, ok := t.header[key]; ok && i < len(row) {
			if v := strings.TrimSpace(row[i]); v != "" {
				return v
			}
		}
	}
	return ""
}

func (t *table) money(row []string, keys ...string) (float64, error) {
	return model.ParseMoney(t.get(row, keys...))
}

func (t *table) count(row []string, keys ...string) (int64, error) {
	return model.ParseCount(t.get(row, keys...))
}

// boolDefault parses a flag column, returning def when the column is absent.
func (t *table) boolDefault(row []string, def bool, keys ...string) bool {
	for _, key := range keys {
		if _, ok := t.header[key]; ok {
			return model.ParseBool(t.get(row, key))
		}
	}
	return def
}

// fiscalYear resolves a row's fiscal year from an explicit year column, a
// fiscal-year-end date, or the folder year.
func (t *table) fiscalYear(row []string, fallback int) int {
	if v := t.get(row, "fiscal_year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			return y
		}
	}
	if d, ok := model.ParseDate(t.get(row, "fiscal_year_end", "year_end")); ok {
		return d.Year()
	}
	return fallback
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// loadState accumulates records across company folders within one load.
type loadState struct {
	rs     *model.RecordSet
	people map[string]int // person id -> index into rs.People
	seen   dedupe.Keyed
}

// ensurePerson returns the record for id, creating it when first seen. The
// pointer is only valid until the next append; mutate it immediately.
func (st *loadState) ensurePerson(id, name string) *model.PersonRecord {
	if idx, ok := st.people[id]; ok {
		return &st.rs.People[idx]
	}
	st.rs.People = append(st.rs.People, model.PersonRecord{
		ID:       id,
		FullName: name,
		Status:   model.StatusActive,
	})
	st.people[id] = len(st.rs.People) - 1
	return &st.rs.People[len(st.rs.People)-1]
}

// ensureCompany records the company, filling identity from the manifest row
// when one was found and from the slug otherwise.
func (st *loadState) ensureCompany(slug string, year int, manifest *table) {
	rec := model.CompanyRecord{
		Slug:          slug,
		Name:          titleFromSlug(slug),
		Ticker:        "UNK",
		FiscalYearEnd: model.FiscalYearEnd(year),
	}

	if manifest != nil && len(manifest.rows) > 0 {
		row := manifest.rows[0]
		if v := manifest.get(row, "company_name", "name"); v != "" {
			rec.Name = v
		}
		if v := manifest.get(row, "ticker", "stock_ticker", "symbol"); v != "" {
			rec.Ticker = v
		}
		if d, ok := model.ParseDate(manifest.get(row, "fiscal_year_end", "year_end")); ok {
			rec.FiscalYearEnd = d
		}
		rec.Sector = manifest.get(row, "sector")
		rec.SourceURL = manifest.get(row, "source_url")
		rec.Notes = manifest.get(row, "notes")

		for _, f := range []struct {
			dst  *float64
			keys []string
		}{
			{&rec.MarketCapUSD, []string{"market_cap_usd", "market_cap"}},
			{&rec.RevenueUSD, []string{"revenue_usd", "revenue"}},
			{&rec.CapBudgetUSD, []string{"cap_budget_usd", "exec_budget_usd", "exec_budget"}},
		} {
			v, err := manifest.money(row, f.keys...)
			if err != nil {
				st.rs.AddIssue(manifest.file, 2, model.TableSourceManifest, err.Error())
				continue
			}
			*f.dst = v
		}
		if v := manifest.get(row, "founded_year", "founded"); v != "" {
			if y, err := strconv.Atoi(v); err == nil {
				rec.FoundedYear = y
			}
		}
	}

	st.rs.Companies = append(st.rs.Companies, rec)
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (st *loadState) importExecComp(t *table, slug string, year int) {
	kind := model.TableExecutiveCompensation
	ingested := 0
	for i, row := range t.rows {
		line := i + 2
		name := t.get(row, "full_name", "executive_name", "name")
		if name == "" {
			st.skip(t.file, line, kind, "row missing executive name")
			continue
		}
		id := t.get(row, "person_id")
		if id == "" {
			id = model.Slugify(name)
		}

		rec := model.ExecutiveCompensation{
			CompanySlug: slug,
			PersonID:    id,
			FiscalYear:  t.fiscalYear(row, year),
			Source:      t.get(row, "source"),
		}
		if rec.Source == "" {
			rec.Source = fmt.Sprintf("%d Proxy Statement", rec.FiscalYear)
		}

		bad := false
		for _, f := range []struct {
			dst  *float64
			keys []string
		}{
			{&rec.SalaryUSD, []string{"salary_usd", "base_salary_usd", "base_salary", "salary"}},
			{&rec.BonusUSD, []string{"bonus_usd", "cash_bonus_usd", "bonus", "cash_bonus"}},
			{&rec.StockAwardsUSD, []string{"stock_awards_usd", "stock_awards_fair_value_usd", "stock_awards"}},
			{&rec.OptionAwardsUSD, []string{"option_awards_usd", "options_awards_usd", "option_awards"}},
			{&rec.NonEquityIncentiveUSD, []string{"non_equity_incentive_usd", "non_equity_incentive_plan_usd", "non_equity_incentive"}},
			{&rec.PensionChangeUSD, []string{"pension_change_usd", "change_in_pension_and_defcomp_earnings_usd", "pension_change"}},
			{&rec.AllOtherCompUSD, []string{"all_other_comp_usd", "all_other_compensation_usd", "other_compensation_usd", "all_other_comp"}},
			{&rec.TotalCompUSD, []string{"total_comp_usd", "total_compensation_usd", "total_compensation"}},
		} {
			v, err := t.money(row, f.keys...)
			if err != nil {
				st.skip(t.file, line, kind, err.Error())
				bad = true
				break
			}
			*f.dst = v
		}
		if bad {
			continue
		}

		if st.seen.SeenAndRecord(dedupe.PersonYearKey(string(kind), id, rec.FiscalYear)) {
			st.skip(t.file, line, kind, fmt.Sprintf("duplicate compensation figure for %q in %d", id, rec.FiscalYear))
			continue
		}

		p := st.ensurePerson(id, name)
		p.IsExecutive = true
		if v := t.get(row, "current_title", "title", "position"); v != "" {
			p.CurrentTitle = v
		}
		if v := t.get(row, "education", "education_background"); v != "" && p.Education == "" {
			p.Education = v
		}
		if v := normalizeStatus(t.get(row, "status", "employment_status")); v != "" {
			p.Status = v
		}
		if v, err := t.count(row, "years_experience", "experience_years"); err == nil && v > 0 && p.YearsExperience == 0 {
			p.YearsExperience = int(v)
		}

		st.rs.ExecutiveComp = append(st.rs.ExecutiveComp, rec)
		ingested++
	}
	metrics.RecordRowsIngested(string(kind), ingested)
}

func (st *loadState) importEquityGrants(t *table, slug string, year int) {
	kind := model.TableExecutiveEquityGrant
	ingested := 0
	for i, row := range t.rows {
		line := i + 2
		name := t.get(row, "full_name", "executive_name", "name")
		if name == "" {
			st.skip(t.file, line, kind, "row missing executive name")
			continue
		}
		id := t.get(row, "person_id")
		if id == "" {
			id = model.Slugify(name)
		}

		rec := model.ExecutiveEquityGrant{
			CompanySlug:          slug,
			PersonID:             id,
			FiscalYear:           t.fiscalYear(row, year),
			AwardType:            t.get(row, "type", "award_type"),
			VestingScheduleShort: t.get(row, "vesting_schedule_short", "vesting_schedule"),
			Source:               t.get(row, "source"),
		}
		if d, ok := model.ParseDate(t.get(row, "grant_date")); ok {
			rec.GrantDate = d
		} else {
			rec.GrantDate = model.FiscalYearEnd(rec.FiscalYear)
		}

		bad := false
		for _, f := range []struct {
			dst  *int64
			keys []string
		}{
			{&rec.ThresholdUnits, []string{"threshold_units"}},
			{&rec.TargetUnits, []string{"target_units", "rsu_units"}},
			{&rec.MaxUnits, []string{"max_units"}},
		} {
			v, err := t.count(row, f.keys...)
			if err != nil {
				st.skip(t.file, line, kind, err.Error())
				bad = true
				break
			}
			*f.dst = v
		}
		if bad {
			continue
		}

		v, err := t.money(row, "grant_date_fair_value_usd", "grant_date_value_usd")
		if err != nil {
			st.skip(t.file, line, kind, err.Error())
			continue
		}
		rec.GrantDateFairValueUSD = v

		p := st.ensurePerson(id, name)
		p.IsExecutive = true

		st.rs.EquityGrants = append(st.rs.EquityGrants, rec)
		ingested++
	}
	metrics.RecordRowsIngested(string(kind), ingested)
}

func (st *loadState) importOwnership(t *table, slug string, year int) {
	kind := model.TableBeneficialOwnership
	ingested := 0
	for i, row := range t.rows {
		line := i + 2
		name := t.get(row, "full_name", "name")
		if name == "" {
			st.skip(t.file, line, kind, "row missing holder name")
			continue
		}
		id := t.get(row, "person_id")
		if id == "" {
			id = model.Slugify(name)
		}

		rec := model.BeneficialOwnershipRecord{
			CompanySlug: slug,
			PersonID:    id,
			Role:        t.get(row, "role", "title"),
			FiscalYear:  t.fiscalYear(row, year),
			Notes:       t.get(row, "notes"),
		}
		if d, ok := model.ParseDate(t.get(row, "as_of_date")); ok {
			rec.AsOfDate = d
		} else {
			rec.AsOfDate = model.FiscalYearEnd(rec.FiscalYear)
		}

		bad := false
		for _, f := range []struct {
			dst  *int64
			keys []string
		}{
			{&rec.TotalShares, []string{"total_shares", "total_shares_owned", "total_beneficial_ownership"}},
			{&rec.SoleVotingPower, []string{"sole_voting_power", "direct_or_indirect_sole_voting"}},
			{&rec.SharedVotingPower, []string{"shared_voting_power", "indirect_shared_voting"}},
		} {
			v, err := t.count(row, f.keys...)
			if err != nil {
				st.skip(t.file, line, kind, err.Error())
				bad = true
				break
			}
			*f.dst = v
		}
		if bad {
			continue
		}

		pct, err := model.ParsePercent(t.get(row, "percent_of_class", "percent_class"))
		if err != nil {
			st.skip(t.file, line, kind, err.Error())
			continue
		}
		rec.PercentOfClass = pct

		p := st.ensurePerson(id, name)
		p.IsExecutive = p.IsExecutive || t.boolDefault(row, false, "is_executive")
		p.IsDirector = p.IsDirector || t.boolDefault(row, false, "is_director")

		st.rs.Ownership = append(st.rs.Ownership, rec)
		ingested++
	}
	metrics.RecordRowsIngested(string(kind), ingested)
}

func (st *loadState) importDirectorComp(t *table, slug string, year int) {
	kind := model.TableDirectorCompensation
	ingested := 0
	for i, row := range t.rows {
		line := i + 2
		name := t.get(row, "full_name", "director_name", "name")
		if name == "" {
			st.skip(t.file, line, kind, "row missing director name")
			continue
		}
		id := t.get(row, "person_id")
		if id == "" {
			id = model.Slugify(name)
		}

		rec := model.DirectorCompensation{
			CompanySlug: slug,
			PersonID:    id,
			FiscalYear:  t.fiscalYear(row, year),
			Source:      t.get(row, "source"),
		}
		if rec.Source == "" {
			rec.Source = fmt.Sprintf("%d Director Compensation", rec.FiscalYear)
		}

		bad := false
		for _, f := range []struct {
			dst  *float64
			keys []string
		}{
			{&rec.FeesCashUSD, []string{"fees_cash_usd", "cash_fees_usd", "cash_retainers_usd"}},
			{&rec.StockAwardsUSD, []string{"stock_awards_usd", "stock_grant_usd"}},
			{&rec.AllOtherCompUSD, []string{"all_other_comp_usd", "all_other_compensation_usd"}},
			{&rec.TotalUSD, []string{"total_usd", "total_comp_usd", "total_compensation_usd"}},
		} {
			v, err := t.money(row, f.keys...)
			if err != nil {
				st.skip(t.file, line, kind, err.Error())
				bad = true
				break
			}
			*f.dst = v
		}
		if bad {
			continue
		}

		if st.seen.SeenAndRecord(dedupe.PersonYearKey(string(kind), id, rec.FiscalYear)) {
			st.skip(t.file, line, kind, fmt.Sprintf("duplicate director figure for %q in %d", id, rec.FiscalYear))
			continue
		}

		p := st.ensurePerson(id, name)
		p.IsDirector = true
		if p.CurrentTitle == "" {
			p.CurrentTitle = t.get(row, "role", "title")
			if p.CurrentTitle == "" {
				p.CurrentTitle = "Director"
			}
		}

		st.rs.DirectorComp = append(st.rs.DirectorComp, rec)
		ingested++
	}
	metrics.RecordRowsIngested(string(kind), ingested)
}

func (st *loadState) importDirectorProfiles(t *table, slug string) {
	kind := model.TableDirectorProfile
	ingested := 0
	for i, row := range t.rows {
		line := i + 2
		name := t.get(row, "full_name", "director_name", "name")
		if name == "" {
			st.skip(t.file, line, kind, "row missing director name")
			continue
		}
		id := t.get(row, "person_id")
		if id == "" {
			id = model.Slugify(name)
		}

		rec := model.DirectorProfile{
			CompanySlug:             slug,
			PersonID:                id,
			Role:                    t.get(row, "role", "title"),
			Independent:             t.boolDefault(row, true, "independent", "is_independent"),
			LeadIndependentDirector: t.boolDefault(row, false, "lead_independent_director", "lead_independent"),
			Committees:              t.get(row, "committees"),
			PrimaryOccupation:       t.get(row, "primary_occupation", "occupation"),
			OtherPublicBoards:       t.get(row, "other_public_boards"),
		}
		if rec.Role == "" {
			rec.Role = "Director"
		}
		if v := t.get(row, "director_since"); v != "" {
			if y, err := strconv.Atoi(v); err == nil {
				rec.DirectorSince = y
			}
		}

		p := st.ensurePerson(id, name)
		p.IsDirector = true
		if p.CurrentTitle == "" {
			p.CurrentTitle = rec.Role
		}

		st.rs.DirectorProfiles = append(st.rs.DirectorProfiles, rec)
		ingested++
	}
	metrics.RecordRowsIngested(string(kind), ingested)
}

func (st *loadState) importDirectorPolicies(t *table, slug string) {
	kind := model.TableDirectorCompPolicy
	ingested := 0
	for i, row := range t.rows {
		line := i + 2
		component := t.get(row, "component", "policy_item")
		if component == "" {
			st.skip(t.file, line, kind, "row missing policy component")
			continue
		}

		amount, err := t.money(row, "amount_usd", "value_usd")
		if err != nil {
			st.skip(t.file, line, kind, err.Error())
			continue
		}

		st.rs.DirectorPolicies = append(st.rs.DirectorPolicies, model.DirectorCompPolicy{
			CompanySlug: slug,
			Component:   component,
			AmountUSD:   amount,
			Unit:        t.get(row, "unit"),
			Notes:       t.get(row, "notes"),
		})
		ingested++
	}
	metrics.RecordRowsIngested(string(kind), ingested)
}

// skip records one rejected row.
func (st *loadState) skip(file string, line int, kind model.Table, reason string) {
	st.rs.AddIssue(file, line, kind, reason)
	metrics.RecordRowSkipped(string(kind))
}

func normalizeStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ""
	case "active":
		return model.StatusActive
	case "retired":
		return model.StatusRetired
	default:
		return strings.TrimSpace(s)
	}
}
