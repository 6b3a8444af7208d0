package query

import (
	"cmp"
	"slices"
	"strings"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort selects a comparator key and direction. An empty By leaves the
// collection order untouched; Order defaults to descending.
type Sort struct {
	By    string
	Order SortOrder
}

func (s Sort) descending() bool {
	return s.Order != SortAsc
}

type comparator[T any] func(a, b T) int

// sortStable sorts items in place by the comparator registered for s.By.
// Unknown keys are ignored.
func sortStable[T any](items []T, s Sort, comparators map[string]comparator[T]) {
	if s.By == "" {
		return
	}
	fn, ok := comparators[s.By]
	if !ok {
		return
	}
	if s.descending() {
		slices.SortStableFunc(items, func(a, b T) int { return fn(b, a) })
		return
	}
	slices.SortStableFunc(items, fn)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareRank[K comparable](rank map[K]int, a, b K) int {
	return cmp.Compare(rank[a], rank[b])
}
