package ports

import (
	"context"
	"io"

	"recovery-dashboard/internal/features/orders/domain"
)

// RecordParser turns a delimited-text payload into header-keyed rows.
type RecordParser interface {
	// Parse reads the whole payload. The first row is the header; blank lines are skipped.
	Parse(r io.Reader, opts ParseOptions) ([]domain.RawRow, error)
}

// SnapshotRepository is the publication slot holding the last successful run.
type SnapshotRepository interface {
	// Save replaces the published snapshot.
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	// Get returns the published snapshot, or nil when nothing was published yet.
	Get(ctx context.Context) (*domain.Snapshot, error)
	// Clear removes the published snapshot.
	Clear(ctx context.Context) error
}

// PayloadSource fetches an order export from a remote location.
type PayloadSource interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// DashboardService defines the primary port used by presentation adapters.
type DashboardService interface {
	// Upload runs the pipeline over payload and publishes the result.
	Upload(ctx context.Context, payload io.Reader, source string, opts ParseOptions) (*domain.Snapshot, error)
	// Import fetches the payload at location, then behaves like Upload.
	Import(ctx context.Context, location string) (*domain.Snapshot, error)
	// Latest returns the last published snapshot.
	Latest(ctx context.Context) (*domain.Snapshot, error)
	// Reset withdraws the published snapshot.
	Reset(ctx context.Context) error
}

// ParseOptions tunes how a single payload is tokenized.
type ParseOptions struct {
	// Delimiter forces the field separator; 0 means auto-detect.
	Delimiter rune
}
