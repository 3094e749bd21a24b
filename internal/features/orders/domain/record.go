package domain

import "time"

// Column names read from the order export.
const (
	ColumnRecovery = "Recovery Date"
	ColumnShipBy   = "ShipBy"
	ColumnName     = "Name"
	ColumnOrder    = "Order"
	ColumnLine     = "Line"
	// ColumnPart keeps the leading space the ERP export puts in its header.
	ColumnPart     = " Part"
	ColumnDesc     = "Desc"
	ColumnOrderQty = "OrderQty"
)

// RawRow maps a header name to the cell value of one data row.
type RawRow map[string]string

// Get returns the value of column, or "" when the column is absent.
func (r RawRow) Get(column string) string {
	return r[column]
}

// Clone returns an independent copy of the row.
func (r RawRow) Clone() RawRow {
	out := make(RawRow, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// NormalizedRecord is an order row enriched with the fields derived from its recovery note.
type NormalizedRecord struct {
	// Fields is the private copy of the source row.
	Fields RawRow `json:"fields" yaml:"fields"`
	// ETADate is ETASentinel or an M/D/YY token.
	ETADate string `json:"etaDate" yaml:"etaDate"`
	// StatusNote is the part of the recovery note that is not the ETA line.
	StatusNote string `json:"statusNote" yaml:"statusNote"`
	// StatusCategory is the classification of the line.
	StatusCategory StatusCategory `json:"statusCategory" yaml:"statusCategory"`
	// DaysUntilShipment is nil when the row has no usable ShipBy date.
	DaysUntilShipment *int `json:"daysUntilShipment" yaml:"daysUntilShipment"`
}

// Raw returns a copy of the source row the record was derived from.
func (r NormalizedRecord) Raw() RawRow {
	return r.Fields.Clone()
}

// Customer returns the customer name of the line.
func (r NormalizedRecord) Customer() string {
	return r.Fields.Get(ColumnName)
}

// ShipmentLabel renders the shipment countdown of the record.
func (r NormalizedRecord) ShipmentLabel() string {
	return ShipmentLabel(r.DaysUntilShipment)
}

// CalendarDay returns midnight UTC of the calendar date t falls on in its own location.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
