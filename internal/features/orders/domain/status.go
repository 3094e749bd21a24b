package domain

// StatusCategory is the closed set of delivery states assigned to an order line.
type StatusCategory string

const (
	// StatusPending indicates the line is waiting on a recovery date or an open action.
	StatusPending StatusCategory = "Pending"
	// StatusComplete indicates the recovery work is done.
	StatusComplete StatusCategory = "Complete"
	// StatusAtRisk indicates the ETA may slide.
	StatusAtRisk StatusCategory = "At Risk"
	// StatusOnHold indicates the order is blocked on credit.
	StatusOnHold StatusCategory = "On Hold"
	// StatusLate indicates the ETA is already in the past.
	StatusLate StatusCategory = "Late"
	// StatusOnTime indicates the ETA is today or later.
	StatusOnTime StatusCategory = "On Time"
	// StatusUnknown indicates the line carried no recovery note at all.
	StatusUnknown StatusCategory = "Unknown"
)

var statusCategories = []StatusCategory{
	StatusPending,
	StatusComplete,
	StatusAtRisk,
	StatusOnHold,
	StatusLate,
	StatusOnTime,
	StatusUnknown,
}

// StatusCategories returns every category in display order.
func StatusCategories() []StatusCategory {
	out := make([]StatusCategory, len(statusCategories))
	copy(out, statusCategories)
	return out
}

// ParseStatusCategory returns the category named s, or false if s is not one of them.
func ParseStatusCategory(s string) (StatusCategory, bool) {
	for _, c := range statusCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Valid reports whether s belongs to the closed set.
func (s StatusCategory) Valid() bool {
	_, ok := ParseStatusCategory(string(s))
	return ok
}

// NeedsAttention reports whether the category is one the dashboard flags.
func (s StatusCategory) NeedsAttention() bool {
	return s == StatusAtRisk || s == StatusOnHold || s == StatusLate
}
