package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"recovery-dashboard/internal/core/logger"
	"recovery-dashboard/internal/features/orders/domain"
	"recovery-dashboard/internal/features/orders/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrParseFailed is returned when the payload cannot be tokenized into rows.
	ErrParseFailed = errors.New("error parsing CSV")
	// ErrProcessingFailed is returned when normalization or aggregation faults.
	ErrProcessingFailed = errors.New("error processing data")
)

// PipelineConfig tunes a Pipeline.
type PipelineConfig struct {
	// AssumedYear is the year ETA tokens are placed in.
	AssumedYear int
	// TopCustomers is the length of the top-customers list.
	TopCustomers int
	// Workers bounds the normalization fan-out.
	Workers int
	// ParallelThreshold is the row count from which normalization fans out.
	ParallelThreshold int
	// Location decides which calendar day "today" is.
	Location *time.Location
	// Rules overrides the classification order; empty means domain.DefaultRules.
	Rules []domain.Rule
}

// Pipeline parses a payload, normalizes every row and aggregates the result.
// It keeps no state between runs.
type Pipeline struct {
	parser     ports.RecordParser
	normalizer *domain.Normalizer
	cfg        PipelineConfig
	clock      func() time.Time
}

// NewPipeline creates a new Pipeline.
func NewPipeline(parser ports.RecordParser, cfg PipelineConfig) *Pipeline {
	if cfg.AssumedYear == 0 {
		cfg.AssumedYear = domain.DefaultAssumedYear
	}
	if cfg.TopCustomers <= 0 {
		cfg.TopCustomers = domain.DefaultTopCustomers
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	return &Pipeline{
		parser:     parser,
		normalizer: domain.NewNormalizer(cfg.AssumedYear, domain.NewClassifier(cfg.Rules...)),
		cfg:        cfg,
		clock:      time.Now,
	}
}

// WithClock replaces the source of "today".
func (p *Pipeline) WithClock(clock func() time.Time) *Pipeline {
	p.clock = clock
	return p
}

// Today returns the current reference time in the configured location.
func (p *Pipeline) Today() time.Time {
	return p.clock().In(p.cfg.Location)
}

// Process runs parse, normalize and aggregate over payload. Either the whole
// snapshot is returned or an error and no snapshot.
func (p *Pipeline) Process(ctx context.Context, payload io.Reader, source string, opts ports.ParseOptions) (*domain.Snapshot, error) {
	start := time.Now()
	l := logger.Named("pipeline")

	rows, err := p.parser.Parse(payload, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	today := p.Today()

	records, err := p.normalizeAll(ctx, rows, today)
	if err != nil {
		return nil, err
	}

	aggregates, err := p.aggregate(records)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.Snapshot{
		ID:          uuid.NewString(),
		Source:      source,
		Today:       today.Format(time.DateOnly),
		AssumedYear: p.cfg.AssumedYear,
		GeneratedAt: time.Now().UTC(),
		Records:     records,
		Aggregates:  aggregates,
	}

	l.Info("Pipeline run completed",
		zap.String("run_id", snapshot.ID),
		zap.String("source", source),
		zap.Int("rows", len(records)),
		zap.Int("needs_attention", aggregates.Summary.NeedsAttention),
		zap.Duration("duration", time.Since(start)),
	)

	return snapshot, nil
}

// normalizeAll normalizes rows in input order. Large inputs are split into
// contiguous chunks, one goroutine per chunk, each writing only its own range.
func (p *Pipeline) normalizeAll(ctx context.Context, rows []domain.RawRow, today time.Time) ([]domain.NormalizedRecord, error) {
	records := make([]domain.NormalizedRecord, len(rows))

	if p.cfg.Workers <= 1 || len(rows) < p.cfg.ParallelThreshold {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.normalizeRange(rows, records, 0, len(rows), today); err != nil {
			return nil, err
		}
		return records, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.cfg.Workers)

	chunk := (len(rows) + p.cfg.Workers - 1) / p.cfg.Workers
	for lo := 0; lo < len(rows); lo += chunk {
		hi := min(lo+chunk, len(rows))
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return p.normalizeRange(rows, records, lo, hi, today)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *Pipeline) normalizeRange(rows []domain.RawRow, out []domain.NormalizedRecord, lo, hi int, today time.Time) (err error) {
	i := lo
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: row %d: %v", ErrProcessingFailed, i+1, r)
		}
	}()

	for ; i < hi; i++ {
		out[i] = p.normalizer.Normalize(rows[i], today)
	}
	return nil
}

func (p *Pipeline) aggregate(records []domain.NormalizedRecord) (agg domain.Aggregates, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProcessingFailed, r)
		}
	}()

	return domain.Aggregate(records, p.cfg.TopCustomers), nil
}
