package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DaysUntilShipment returns the signed number of days from today to the ShipBy date
// (MM/DD/YY, century fixed to 20YY). Zero means due today, negative means overdue.
// It returns nil for an empty or malformed value.
func DaysUntilShipment(shipBy string, today time.Time) *int {
	shipBy = strings.TrimSpace(shipBy)
	if shipBy == "" {
		return nil
	}

	parts := strings.Split(shipBy, "/")
	if len(parts) != 3 {
		return nil
	}

	month, ok := parseDigits(parts[0], 1, 2)
	if !ok {
		return nil
	}
	day, ok := parseDigits(parts[1], 1, 2)
	if !ok {
		return nil
	}
	yy, ok := parseDigits(parts[2], 2, 2)
	if !ok {
		return nil
	}

	due := time.Date(2000+yy, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if due.Month() != time.Month(month) || due.Day() != day {
		return nil
	}

	days := int(math.Ceil(due.Sub(CalendarDay(today)).Hours() / 24))
	return &days
}

// ShipmentLabel renders a shipment countdown; nil renders as "".
func ShipmentLabel(days *int) string {
	switch {
	case days == nil:
		return ""
	case *days == 0:
		return "Due today"
	case *days > 0:
		return fmt.Sprintf("%d days left", *days)
	default:
		return fmt.Sprintf("%d days overdue", -*days)
	}
}

func parseDigits(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
