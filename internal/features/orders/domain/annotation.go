package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ETASentinel marks a record whose recovery note carries no ETA.
const ETASentinel = "TBD"

var etaPattern = regexp.MustCompile(`ETA\s+(\d+/\d+)`)

// Annotation is what ExtractAnnotation finds in a recovery note.
type Annotation struct {
	// ETA is ETASentinel or month/day suffixed with the two-digit year.
	ETA string
	// Note is the residual status text.
	Note string
}

// ExtractAnnotation splits a recovery note into its ETA token and residual status text.
// The status text is only collected from multi-line notes; a single-line note
// yields an empty Note even when it holds a status keyword.
func ExtractAnnotation(text string, year int) Annotation {
	a := Annotation{ETA: ETASentinel}
	if text == "" {
		return a
	}

	if m := etaPattern.FindStringSubmatch(text); m != nil {
		a.ETA = fmt.Sprintf("%s/%02d", m[1], year%100)
	}

	if strings.Contains(text, "\n") {
		var parts []string
		for _, seg := range strings.Split(text, "\n") {
			seg = strings.TrimSpace(seg)
			if seg == "" || strings.HasPrefix(seg, "ETA") {
				continue
			}
			parts = append(parts, seg)
		}
		a.Note = strings.Join(parts, " ")
	}

	return a
}
