package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"recovery-dashboard/internal/core/cache"
	"recovery-dashboard/internal/features/orders/domain"
)

const snapshotCacheKey = "snapshot:latest"

// RedisSnapshotRepository implements ports.SnapshotRepository on top of the cache.
// The snapshot is written under a single key so a reader never sees half a run.
type RedisSnapshotRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisSnapshotRepository creates a new RedisSnapshotRepository. A ttl of 0 keeps
// the snapshot until the next run replaces it.
func NewRedisSnapshotRepository(c cache.Cache, ttl time.Duration) *RedisSnapshotRepository {
	return &RedisSnapshotRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the snapshot in the cache.
func (r *RedisSnapshotRepository) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.cache.Set(ctx, snapshotCacheKey, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save snapshot to cache: %w", err)
	}

	return nil
}

// Get retrieves the snapshot from the cache.
func (r *RedisSnapshotRepository) Get(ctx context.Context) (*domain.Snapshot, error) {
	data, err := r.cache.Get(ctx, snapshotCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

// Clear removes the published snapshot.
func (r *RedisSnapshotRepository) Clear(ctx context.Context) error {
	if err := r.cache.Delete(ctx, snapshotCacheKey); err != nil {
		return fmt.Errorf("failed to delete snapshot from cache: %w", err)
	}
	return nil
}
