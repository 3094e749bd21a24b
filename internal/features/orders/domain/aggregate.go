package domain

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
)

// DefaultTopCustomers is the length of the top-customers list.
const DefaultTopCustomers = 5

// DateCount is the number of records sharing one ETA date.
type DateCount struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
}

// StatusCount is the number of records in one status category.
type StatusCount struct {
	Status StatusCategory `json:"status" yaml:"status"`
	Count  int            `json:"count" yaml:"count"`
}

// CustomerCount is the number of order lines of one customer.
type CustomerCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Aggregates bundles every projection of one record set.
type Aggregates struct {
	ByETADate    []DateCount     `json:"byEtaDate" yaml:"byEtaDate"`
	ByStatus     []StatusCount   `json:"byStatus" yaml:"byStatus"`
	TopCustomers []CustomerCount `json:"topCustomers" yaml:"topCustomers"`
	Summary      Summary         `json:"summary" yaml:"summary"`
}

// Aggregate computes all projections over records.
func Aggregate(records []NormalizedRecord, topCustomers int) Aggregates {
	return Aggregates{
		ByETADate:    CountByETADate(records),
		ByStatus:     CountByStatus(records),
		TopCustomers: TopCustomers(records, topCustomers),
		Summary:      Summarize(records),
	}
}

// CountByETADate groups records by ETA date, ordered by month and day with
// the TBD bucket last.
func CountByETADate(records []NormalizedRecord) []DateCount {
	keys, counts := countBy(records, func(r NormalizedRecord) string { return r.ETADate })

	out := make([]DateCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, DateCount{Date: k, Count: counts[k]})
	}

	slices.SortStableFunc(out, func(a, b DateCount) int {
		aTBD, bTBD := a.Date == ETASentinel, b.Date == ETASentinel
		switch {
		case aTBD && bTBD:
			return 0
		case aTBD:
			return 1
		case bTBD:
			return -1
		}
		am, ad := etaSortKey(a.Date)
		bm, bd := etaSortKey(b.Date)
		return cmp.Or(cmp.Compare(am, bm), cmp.Compare(ad, bd))
	})
	return out
}

// CountByStatus groups records by category in first-seen order.
func CountByStatus(records []NormalizedRecord) []StatusCount {
	keys, counts := countBy(records, func(r NormalizedRecord) StatusCategory { return r.StatusCategory })

	out := make([]StatusCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, StatusCount{Status: k, Count: counts[k]})
	}
	return out
}

// TopCustomers returns the customers with the most lines, descending, ties in
// first-seen order. limit <= 0 means DefaultTopCustomers.
func TopCustomers(records []NormalizedRecord, limit int) []CustomerCount {
	if limit <= 0 {
		limit = DefaultTopCustomers
	}

	keys, counts := countBy(records, NormalizedRecord.Customer)

	out := make([]CustomerCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, CustomerCount{Name: k, Count: counts[k]})
	}

	slices.SortStableFunc(out, func(a, b CustomerCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// countBy returns the distinct keys in first-seen order and their counts.
func countBy[K comparable](records []NormalizedRecord, key func(NormalizedRecord) K) ([]K, map[K]int) {
	var keys []K
	counts := make(map[K]int)
	for _, r := range records {
		k := key(r)
		if _, seen := counts[k]; !seen {
			keys = append(keys, k)
		}
		counts[k]++
	}
	return keys, counts
}

// etaSortKey returns the month and day of an M/D/YY token. Parts that do not
// parse, or overflow, sort after every real date.
func etaSortKey(date string) (month, day int) {
	parts := strings.Split(date, "/")
	if len(parts) < 2 {
		return math.MaxInt, math.MaxInt
	}
	return sortPart(parts[0]), sortPart(parts[1])
}

func sortPart(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return math.MaxInt
	}
	return n
}
