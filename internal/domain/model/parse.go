package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases value and collapses every non-alphanumeric run into a
// single underscore, e.g. "Berkshire Hathaway Inc." -> "berkshire_hathaway_inc".
func Slugify(value string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(value), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "unknown"
	}
	return slug
}

// blank reports whether a cell carries no value. Filings use a handful of
// spellings for "no data".
func blank(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "na", "n/a", "none", "-", "--":
		return true
	}
	return false
}

// ParseMoney converts a currency cell to a float. Blank cells parse to zero;
// a non-numeric non-blank cell is a schema violation and returns an error.
func ParseMoney(s string) (float64, error) {
	if blank(s) {
		return 0, nil
	}
	text := strings.TrimSpace(s)
	text = strings.ReplaceAll(text, ",", "")
	text = strings.ReplaceAll(text, "$", "")
	neg := false
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		neg = true
		text = strings.TrimSuffix(strings.TrimPrefix(text, "("), ")")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("not a monetary value: %q", s)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// ParseCount converts a share/unit count cell to an int64. Blank parses to
// zero; fractional counts are truncated toward zero.
func ParseCount(s string) (int64, error) {
	if blank(s) {
		return 0, nil
	}
	text := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("not a count: %q", s)
	}
	return int64(f), nil
}

// ParsePercent converts a percentage cell, accepting a trailing "%" and the
// "<1%" style used for de-minimis holdings.
func ParsePercent(s string) (float64, error) {
	if blank(s) {
		return 0, nil
	}
	text := strings.TrimSpace(s)
	text = strings.TrimPrefix(text, "<")
	text = strings.TrimSuffix(text, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("not a percentage: %q", s)
	}
	return v, nil
}

// ParseBool interprets the truthy spellings found in source files.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}

// dateLayouts in the order they appear in real filings.
var dateLayouts = []string{"2006-01-02", "1/2/2006", "01/02/2006"}

// ParseDate parses the date spellings found in source files. The second
// return is false when the cell is blank or unparseable.
func ParseDate(s string) (time.Time, bool) {
	if blank(s) {
		return time.Time{}, false
	}
	text := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FiscalYearEnd returns December 31 of year in UTC, the fallback used when a
// manifest does not disclose its fiscal calendar.
func FiscalYearEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}
