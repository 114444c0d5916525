package model

import "fmt"

// LoadIssue records a row that failed schema validation and was skipped.
// Issues are carried into the snapshot so the manifest view can show them.
type LoadIssue struct {
	File   string
	Line   int
	Table  Table
	Reason string
}

func (i LoadIssue) String() string {
	return fmt.Sprintf("%s:%d (%s): %s", i.File, i.Line, i.Table, i.Reason)
}

// RecordSet is the complete output of one load: every fact table for one
// reporting year, plus provenance and the issues encountered on the way.
type RecordSet struct {
	Source string // loader name, e.g. "fortune10" or "gcs"
	Year   int
	LoadID string // unique per load, for log correlation

	Companies        []CompanyRecord
	People           []PersonRecord
	ExecutiveComp    []ExecutiveCompensation
	EquityGrants     []ExecutiveEquityGrant
	Ownership        []BeneficialOwnershipRecord
	DirectorComp     []DirectorCompensation
	DirectorProfiles []DirectorProfile
	DirectorPolicies []DirectorCompPolicy

	Manifest []SourceManifestEntry
	Issues   []LoadIssue
	Warnings []string
}

// AddIssue appends a skipped-row record.
func (rs *RecordSet) AddIssue(file string, line int, table Table, reason string) {
	rs.Issues = append(rs.Issues, LoadIssue{File: file, Line: line, Table: table, Reason: reason})
}

// AddWarning appends a per-company, non-fatal load warning.
func (rs *RecordSet) AddWarning(format string, args ...any) {
	rs.Warnings = append(rs.Warnings, fmt.Sprintf(format, args...))
}

// RowCount returns the number of fact rows across all tables.
func (rs *RecordSet) RowCount() int {
	return len(rs.ExecutiveComp) + len(rs.EquityGrants) + len(rs.Ownership) +
		len(rs.DirectorComp) + len(rs.DirectorProfiles) + len(rs.DirectorPolicies)
}

// Company returns the company record for slug, if present.
func (rs *RecordSet) Company(slug string) (CompanyRecord, bool) {
	for _, c := range rs.Companies {
		if c.Slug == slug {
			return c, true
		}
	}
	return CompanyRecord{}, false
}

// Person returns the person record for id, if present.
func (rs *RecordSet) Person(id string) (PersonRecord, bool) {
	for _, p := range rs.People {
		if p.ID == id {
			return p, true
		}
	}
	return PersonRecord{}, false
}
