package domain

import "time"

// DefaultAssumedYear is the year ETA tokens fall in unless configured otherwise.
const DefaultAssumedYear = 2025

// Normalizer derives a NormalizedRecord from a RawRow. It holds no mutable state
// and is safe for concurrent use.
type Normalizer struct {
	year       int
	classifier *Classifier
}

// NewNormalizer creates a Normalizer for ETA tokens in year. A nil classifier
// means the default rule list.
func NewNormalizer(year int, classifier *Classifier) *Normalizer {
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &Normalizer{
		year:       year,
		classifier: classifier,
	}
}

// Year returns the assumed ETA year.
func (n *Normalizer) Year() int {
	return n.year
}

// Normalize extracts the annotation, classifies it and computes the shipment countdown.
func (n *Normalizer) Normalize(row RawRow, today time.Time) NormalizedRecord {
	note := row.Get(ColumnRecovery)
	ann := ExtractAnnotation(note, n.year)

	category := StatusUnknown
	if note != "" {
		category = n.classifier.Classify(ClassifyInput{
			Note:  ann.Note,
			ETA:   ann.ETA,
			Year:  n.year,
			Today: today,
		})
	}

	return NormalizedRecord{
		Fields:            row.Clone(),
		ETADate:           ann.ETA,
		StatusNote:        ann.Note,
		StatusCategory:    category,
		DaysUntilShipment: DaysUntilShipment(row.Get(ColumnShipBy), today),
	}
}
