package query

import (
	"strings"
	"time"
)

// normalizeTerm lowercases a search term; blank terms disable the filter.
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsFold(haystack, term string) bool {
	return strings.Contains(strings.ToLower(haystack), term)
}

func anyContainsFold(list []string, term string) bool {
	for _, s := range list {
		if containsFold(s, term) {
			return true
		}
	}
	return false
}

var epoch = time.Unix(0, 0).UTC()

type dateRange struct {
	from   time.Time
	to     time.Time
	active bool
}

// newDateRange builds an inclusive range from optional YYYY-MM-DD bounds.
// Malformed bounds count as missing.
func newDateRange(from, to string, now time.Time) dateRange {
	r := dateRange{from: epoch, to: now}
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(from)); err == nil {
		r.from = t
		r.active = true
	}
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(to)); err == nil {
		r.to = t
		r.active = true
	}
	return r
}

func (r dateRange) contains(t time.Time) bool {
	return !t.Before(r.from) && !t.After(r.to)
}
