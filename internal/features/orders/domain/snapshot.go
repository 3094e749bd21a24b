package domain

import "time"

// Snapshot is the complete output of one pipeline run. It is published as a
// whole and replaced as a whole by the next run.
type Snapshot struct {
	// ID identifies the run.
	ID string `json:"id" yaml:"id"`
	// Source is the uploaded file name or the imported URL.
	Source string `json:"source" yaml:"source"`
	// Today is the reference date the run was computed for (YYYY-MM-DD).
	Today string `json:"today" yaml:"today"`
	// AssumedYear is the year ETA tokens were placed in.
	AssumedYear int `json:"assumedYear" yaml:"assumedYear"`
	// GeneratedAt is when the run finished.
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
	// Records holds the normalized rows in input order.
	Records []NormalizedRecord `json:"records" yaml:"records"`

	Aggregates `yaml:",inline"`
}

// FilterByStatus returns the records of the snapshot in the given category.
func (s *Snapshot) FilterByStatus(status StatusCategory) []NormalizedRecord {
	out := make([]NormalizedRecord, 0)
	for _, r := range s.Records {
		if r.StatusCategory == status {
			out = append(out, r)
		}
	}
	return out
}
