package adapters

import (
	"context"
	"sync"

	"recovery-dashboard/internal/features/orders/domain"
)

// MemorySnapshotRepository keeps the published snapshot in process.
// Used when no Redis URL is configured.
type MemorySnapshotRepository struct {
	mu       sync.RWMutex
	snapshot *domain.Snapshot
}

// NewMemorySnapshotRepository creates an empty MemorySnapshotRepository.
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{}
}

// Save replaces the stored snapshot.
func (r *MemorySnapshotRepository) Save(_ context.Context, snapshot *domain.Snapshot) error {
	r.mu.Lock()
	r.snapshot = snapshot
	r.mu.Unlock()
	return nil
}

// Get returns the stored snapshot or nil.
func (r *MemorySnapshotRepository) Get(_ context.Context) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot, nil
}

// Clear drops the stored snapshot.
func (r *MemorySnapshotRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	r.snapshot = nil
	r.mu.Unlock()
	return nil
}
