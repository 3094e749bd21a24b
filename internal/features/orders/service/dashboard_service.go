package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"recovery-dashboard/internal/core/logger"
	"recovery-dashboard/internal/features/orders/domain"
	"recovery-dashboard/internal/features/orders/ports"

	"go.uber.org/zap"
)

var (
	// ErrNoSnapshot is returned when no run has been published yet.
	ErrNoSnapshot = errors.New("no dashboard published yet")
	// ErrFetchFailed is returned when a remote payload cannot be downloaded.
	ErrFetchFailed = errors.New("error fetching payload")
)

// DashboardServiceImpl implements ports.DashboardService.
type DashboardServiceImpl struct {
	pipeline *Pipeline
	repo     ports.SnapshotRepository
	source   ports.PayloadSource
}

// NewDashboardService creates a new DashboardServiceImpl. source may be nil,
// in which case Import always fails.
func NewDashboardService(pipeline *Pipeline, repo ports.SnapshotRepository, source ports.PayloadSource) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		pipeline: pipeline,
		repo:     repo,
		source:   source,
	}
}

// Upload runs the pipeline and publishes the snapshot. A failed run leaves the
// previously published snapshot in place.
func (s *DashboardServiceImpl) Upload(ctx context.Context, payload io.Reader, source string, opts ports.ParseOptions) (*domain.Snapshot, error) {
	snapshot, err := s.pipeline.Process(ctx, payload, source, opts)
	if err != nil {
		logger.Get().Warn("Pipeline run failed", zap.String("source", source), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("service: failed to publish snapshot: %w", err)
	}

	return snapshot, nil
}

// Import downloads the payload at location and uploads it.
func (s *DashboardServiceImpl) Import(ctx context.Context, location string) (*domain.Snapshot, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: no payload source configured", ErrFetchFailed)
	}

	data, err := s.source.Fetch(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	return s.Upload(ctx, bytes.NewReader(data), location, ports.ParseOptions{})
}

// Latest returns the published snapshot.
func (s *DashboardServiceImpl) Latest(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get snapshot: %w", err)
	}
	if snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return snapshot, nil
}

// Reset withdraws the published snapshot.
func (s *DashboardServiceImpl) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("service: failed to clear snapshot: %w", err)
	}
	return nil
}
