package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAnnotation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		year     int
		wantETA  string
		wantNote string
	}{
		{
			name:    "Empty",
			text:    "",
			year:    2025,
			wantETA: ETASentinel,
		},
		{
			name:     "ETA With Status Line",
			text:     "ETA 6/14\nPENDING",
			year:     2025,
			wantETA:  "6/14/25",
			wantNote: "PENDING",
		},
		{
			name:    "Single Line ETA Keeps Leading Zero",
			text:    "ETA 3/01",
			year:    2025,
			wantETA: "3/01/25",
		},
		{
			name:    "Single Line Keyword Is Not Collected",
			text:    "PENDING",
			year:    2025,
			wantETA: ETASentinel,
		},
		{
			name:     "Multiple Status Lines Joined",
			text:     "  POSSIBLE DATE SLIDE \n\nETA 7/2\r\n vendor late  ",
			year:     2025,
			wantETA:  "7/2/25",
			wantNote: "POSSIBLE DATE SLIDE vendor late",
		},
		{
			name:     "Lowercase eta Is Not An ETA",
			text:     "eta 6/14\nCOMPLETE",
			year:     2025,
			wantETA:  ETASentinel,
			wantNote: "eta 6/14 COMPLETE",
		},
		{
			name:     "First ETA Wins",
			text:     "ETA 5/1\nETA 5/20\nCREDIT HOLD",
			year:     2025,
			wantETA:  "5/1/25",
			wantNote: "CREDIT HOLD",
		},
		{
			name:     "ETA Prefixed Lines Dropped Even Without Date",
			text:     "ETA TBD\nawaiting castings",
			year:     2025,
			wantETA:  ETASentinel,
			wantNote: "awaiting castings",
		},
		{
			name:    "Configured Year",
			text:    "ETA 1/9",
			year:    2031,
			wantETA: "1/9/31",
		},
		{
			name:    "Year Below Ten Is Zero Padded",
			text:    "ETA 12/31",
			year:    2007,
			wantETA: "12/31/07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ExtractAnnotation(tt.text, tt.year)
			assert.Equal(t, tt.wantETA, a.ETA)
			assert.Equal(t, tt.wantNote, a.Note)
		})
	}
}
