package domain

import (
	"strconv"
	"strings"
	"time"
)

// ClassifyInput carries everything a Rule may look at.
type ClassifyInput struct {
	// Note is the residual status text of the recovery note.
	Note string
	// ETA is the extracted ETA token or ETASentinel.
	ETA string
	// Year is the year ETA tokens are assumed to fall in.
	Year int
	// Today is the reference date; only its calendar day is used.
	Today time.Time
}

// Rule is one entry of the ordered classification list.
// Evaluate returns the category and true when the rule applies.
type Rule interface {
	Name() string
	Evaluate(in ClassifyInput) (StatusCategory, bool)
}

// KeywordRule matches when the note contains Keyword (case-sensitive).
type KeywordRule struct {
	Keyword  string
	Category StatusCategory
}

func (r KeywordRule) Name() string { return "keyword:" + r.Keyword }

func (r KeywordRule) Evaluate(in ClassifyInput) (StatusCategory, bool) {
	if strings.Contains(in.Note, r.Keyword) {
		return r.Category, true
	}
	return "", false
}

// MissingETARule matches when the note carried no ETA token.
type MissingETARule struct {
	Category StatusCategory
}

func (r MissingETARule) Name() string { return "missing-eta" }

func (r MissingETARule) Evaluate(in ClassifyInput) (StatusCategory, bool) {
	if in.ETA == ETASentinel {
		return r.Category, true
	}
	return "", false
}

// ETADeadlineRule compares the ETA date with today. It always matches:
// Late when the ETA falls strictly before today, On Time otherwise.
type ETADeadlineRule struct{}

func (ETADeadlineRule) Name() string { return "eta-deadline" }

func (ETADeadlineRule) Evaluate(in ClassifyInput) (StatusCategory, bool) {
	eta, ok := ParseETA(in.ETA, in.Year)
	if ok && eta.Before(CalendarDay(in.Today)) {
		return StatusLate, true
	}
	return StatusOnTime, true
}

// DefaultRules returns the classification order used by the dashboard.
func DefaultRules() []Rule {
	return []Rule{
		KeywordRule{Keyword: "PENDING", Category: StatusPending},
		KeywordRule{Keyword: "COMPLETE", Category: StatusComplete},
		KeywordRule{Keyword: "POSSIBLE DATE SLIDE", Category: StatusAtRisk},
		KeywordRule{Keyword: "CREDIT HOLD", Category: StatusOnHold},
		MissingETARule{Category: StatusPending},
		ETADeadlineRule{},
	}
}

// Classifier evaluates an ordered rule list; the first matching rule wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier. With no rules it uses DefaultRules.
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Rules returns the rule list in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Classify returns the category of the first matching rule, StatusUnknown if none
// matches or if a rule yields a value outside the closed set.
func (c *Classifier) Classify(in ClassifyInput) StatusCategory {
	for _, r := range c.rules {
		if cat, ok := r.Evaluate(in); ok {
			if !cat.Valid() {
				return StatusUnknown
			}
			return cat
		}
	}
	return StatusUnknown
}

// ParseETA turns an "M/D" or "M/D/YY" token into a date in year.
// Out-of-range days roll over the way a calendar constructor does (2/30 is March 2).
func ParseETA(token string, year int) (time.Time, bool) {
	parts := strings.Split(token, "/")
	if len(parts) < 2 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
