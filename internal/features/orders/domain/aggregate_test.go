package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name, eta string, status StatusCategory) NormalizedRecord {
	return NormalizedRecord{
		Fields:         RawRow{ColumnName: name},
		ETADate:        eta,
		StatusCategory: status,
	}
}

func TestCountByETADate(t *testing.T) {
	records := []NormalizedRecord{
		record("A", ETASentinel, StatusPending),
		record("A", "6/14/25", StatusOnTime),
		record("B", "12/1/25", StatusOnTime),
		record("C", "3/01/25", StatusLate),
		record("D", "6/14/25", StatusOnTime),
		record("E", ETASentinel, StatusUnknown),
		record("F", "6/9/25", StatusOnTime),
	}

	got := CountByETADate(records)

	assert.Equal(t, []DateCount{
		{Date: "3/01/25", Count: 1},
		{Date: "6/9/25", Count: 1},
		{Date: "6/14/25", Count: 2},
		{Date: "12/1/25", Count: 1},
		{Date: ETASentinel, Count: 2},
	}, got)
}

func TestCountByETADate_TBDAlwaysLast(t *testing.T) {
	for _, records := range [][]NormalizedRecord{
		{record("A", ETASentinel, StatusPending)},
		{record("A", ETASentinel, StatusPending), record("B", "1/1/25", StatusLate)},
		{record("B", "1/1/25", StatusLate), record("A", ETASentinel, StatusPending), record("C", "0/0/25", StatusLate)},
	} {
		got := CountByETADate(records)
		require.NotEmpty(t, got)
		assert.Equal(t, ETASentinel, got[len(got)-1].Date)
	}
}

func TestCountByETADate_OversizedPartsSortAfterDates(t *testing.T) {
	got := CountByETADate([]NormalizedRecord{
		record("A", ETASentinel, StatusPending),
		record("B", "99999999999999999/1/25", StatusOnTime),
		record("C", "6/14/25", StatusOnTime),
		record("D", "1/99999999999999999999/25", StatusOnTime),
		record("E", "1/2/25", StatusLate),
	})

	assert.Equal(t, []DateCount{
		{Date: "1/2/25", Count: 1},
		{Date: "1/99999999999999999999/25", Count: 1},
		{Date: "6/14/25", Count: 1},
		{Date: "99999999999999999/1/25", Count: 1},
		{Date: ETASentinel, Count: 1},
	}, got)
}

func TestCountByETADate_EqualKeysKeepFirstSeenOrder(t *testing.T) {
	got := CountByETADate([]NormalizedRecord{
		record("A", "6/01/25", StatusOnTime),
		record("B", "6/1/25", StatusOnTime),
	})
	assert.Equal(t, []DateCount{{Date: "6/01/25", Count: 1}, {Date: "6/1/25", Count: 1}}, got)
}

func TestCountByStatus_FirstSeenOrder(t *testing.T) {
	got := CountByStatus([]NormalizedRecord{
		record("A", "", StatusLate),
		record("B", "", StatusPending),
		record("C", "", StatusLate),
		record("D", "", StatusUnknown),
	})

	assert.Equal(t, []StatusCount{
		{Status: StatusLate, Count: 2},
		{Status: StatusPending, Count: 1},
		{Status: StatusUnknown, Count: 1},
	}, got)
}

func TestTopCustomers(t *testing.T) {
	t.Run("DescendingByCount", func(t *testing.T) {
		got := TopCustomers([]NormalizedRecord{
			record("Acme", "", StatusLate),
			record("Globex", "", StatusLate),
			record("Acme", "", StatusLate),
			record("Globex", "", StatusLate),
			record("Globex", "", StatusLate),
		}, 5)

		assert.Equal(t, []CustomerCount{{Name: "Globex", Count: 3}, {Name: "Acme", Count: 2}}, got)
	})

	t.Run("TruncatesAndKeepsTieOrder", func(t *testing.T) {
		var records []NormalizedRecord
		for _, name := range []string{"F", "E", "D", "C", "B", "A", "A"} {
			records = append(records, record(name, "", StatusPending))
		}

		got := TopCustomers(records, 0)

		require.Len(t, got, DefaultTopCustomers)
		assert.Equal(t, []CustomerCount{
			{Name: "A", Count: 2},
			{Name: "F", Count: 1},
			{Name: "E", Count: 1},
			{Name: "D", Count: 1},
			{Name: "C", Count: 1},
		}, got)
	})

	t.Run("CustomLimit", func(t *testing.T) {
		got := TopCustomers([]NormalizedRecord{record("A", "", StatusLate), record("B", "", StatusLate)}, 1)
		assert.Equal(t, []CustomerCount{{Name: "A", Count: 1}}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, TopCustomers(nil, 5))
	})
}

func TestAggregate_TotalsMatchRowCount(t *testing.T) {
	n := NewNormalizer(2025, nil)
	today := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	rows := []RawRow{
		orderRow("Acme", "ETA 6/14\nPENDING", "06/01/25"),
		orderRow("Acme", "", ""),
		orderRow("Globex", "ETA 3/01", "06/03/25"),
		orderRow("Globex", "ETA 7/4\nPOSSIBLE DATE SLIDE", "06/01/25"),
		orderRow("Globex", "ETA 7/4\nCREDIT HOLD", ""),
		orderRow("Initech", "x\nCOMPLETE", "bogus"),
	}

	var records []NormalizedRecord
	for _, r := range rows {
		records = append(records, n.Normalize(r, today))
	}

	agg := Aggregate(records, 0)

	sum := func(counts []int) int {
		total := 0
		for _, c := range counts {
			total += c
		}
		return total
	}
	var byDate, byStatus []int
	for _, b := range agg.ByETADate {
		byDate = append(byDate, b.Count)
	}
	for _, b := range agg.ByStatus {
		byStatus = append(byStatus, b.Count)
	}

	assert.Equal(t, len(rows), sum(byDate))
	assert.Equal(t, len(rows), sum(byStatus))
	assert.LessOrEqual(t, len(agg.TopCustomers), DefaultTopCustomers)
	assert.Equal(t, CustomerCount{Name: "Globex", Count: 3}, agg.TopCustomers[0])

	assert.Equal(t, Summary{
		TotalOrders:     6,
		DueToday:        2,
		NeedsAttention:  3,
		UniqueCustomers: 3,
	}, agg.Summary)
}

func TestSnapshot_FilterByStatus(t *testing.T) {
	s := &Snapshot{Records: []NormalizedRecord{
		record("A", "", StatusLate),
		record("B", "", StatusPending),
		record("C", "", StatusLate),
	}}

	got := s.FilterByStatus(StatusLate)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Customer())
	assert.Equal(t, "C", got[1].Customer())
	assert.NotNil(t, s.FilterByStatus(StatusComplete))
	assert.Empty(t, s.FilterByStatus(StatusComplete))
}
