package domain

// Summary holds the headline counters of a record set.
type Summary struct {
	TotalOrders     int `json:"totalOrders" yaml:"totalOrders"`
	DueToday        int `json:"dueToday" yaml:"dueToday"`
	NeedsAttention  int `json:"needsAttention" yaml:"needsAttention"`
	UniqueCustomers int `json:"uniqueCustomers" yaml:"uniqueCustomers"`
}

// Summarize counts total lines, lines shipping today, lines flagged At Risk,
// On Hold or Late, and distinct customer names.
func Summarize(records []NormalizedRecord) Summary {
	s := Summary{TotalOrders: len(records)}
	customers := make(map[string]struct{})

	for _, r := range records {
		if r.DaysUntilShipment != nil && *r.DaysUntilShipment == 0 {
			s.DueToday++
		}
		if r.StatusCategory.NeedsAttention() {
			s.NeedsAttention++
		}
		customers[r.Customer()] = struct{}{}
	}

	s.UniqueCustomers = len(customers)
	return s
}
