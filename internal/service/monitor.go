package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"campushub/internal/model"
	"campushub/internal/repository"
	"campushub/internal/uptime"
)

// SweepResult is the outcome of one RunSweep call.
type SweepResult struct {
	Skipped         bool       `json:"skipped"`
	Reason          string     `json:"reason,omitempty"`
	CheckedAt       *time.Time `json:"checkedAt,omitempty"`
	MonitorsChecked int        `json:"monitorsChecked"`
}

// MonitorService runs uptime sweeps over the configured monitors.
type MonitorService interface {
	// RunSweep probes every monitor unless the previous sweep finished less than the
	// minimum interval ago, in which case nothing is probed or written.
	RunSweep(ctx context.Context) (*SweepResult, error)
}

type monitorService struct {
	repo        repository.StatusRepository
	prober      uptime.Prober
	metrics     *uptime.Metrics
	log         *zap.Logger
	minInterval time.Duration
	now         func() time.Time
}

// NewMonitorService constructs a new MonitorService. metrics may be nil.
func NewMonitorService(repo repository.StatusRepository, prober uptime.Prober, metrics *uptime.Metrics, log *zap.Logger, minInterval time.Duration) MonitorService {
	return &monitorService{
		repo:        repo,
		prober:      prober,
		metrics:     metrics,
		log:         log,
		minInterval: minInterval,
		now:         time.Now,
	}
}

func (s *monitorService) RunSweep(ctx context.Context) (*SweepResult, error) {
	doc, err := s.load(ctx)
	if err != nil {
		s.metrics.ObserveSweep("failed")
		return nil, err
	}

	startedAt := s.now().UTC()
	if doc.LastAutoRunAt != nil && startedAt.Sub(*doc.LastAutoRunAt) < s.minInterval {
		s.metrics.ObserveSweep("skipped")
		s.log.Debug("sweep skipped", zap.Time("last_auto_run_at", *doc.LastAutoRunAt))
		return &SweepResult{Skipped: true, Reason: "ran too recently"}, nil
	}

	monitors := doc.Monitors
	results := make([]model.MonitorResult, len(monitors))

	if len(monitors) > 0 {
		var g errgroup.Group
		g.SetLimit(len(monitors))
		for i, m := range monitors {
			g.Go(func() error {
				r := s.prober.Probe(ctx, m.TargetURL)
				results[i] = model.MonitorResult{
					MonitorID:  m.ID,
					OK:         r.OK,
					HTTPStatus: r.HTTPStatus,
					CheckedAt:  startedAt,
				}
				s.metrics.ObserveProbe(m.ID, r.OK, r.Duration)
				if !r.OK {
					fields := []zap.Field{zap.String("monitor", m.ID), zap.String("url", m.TargetURL)}
					if r.HTTPStatus != nil {
						fields = append(fields, zap.Int("http_status", *r.HTTPStatus))
					}
					if r.Err != nil {
						fields = append(fields, zap.Error(r.Err))
					}
					s.log.Warn("monitor probe failed", fields...)
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	// Merge into a fresh read so admin edits made while probing are not overwritten.
	latest, err := s.load(ctx)
	if err != nil {
		s.metrics.ObserveSweep("failed")
		return nil, err
	}
	for _, r := range results {
		latest.MonitorResults[r.MonitorID] = r
	}
	latest.LastAutoRunAt = &startedAt
	latest.Revision++

	if err := s.repo.Save(ctx, latest); err != nil {
		s.metrics.ObserveSweep("failed")
		return nil, fmt.Errorf("save sweep results: %w", err)
	}

	s.metrics.ObserveSweep("run")
	s.log.Info("sweep completed", zap.Int("monitors", len(monitors)), zap.Time("checked_at", startedAt))
	return &SweepResult{CheckedAt: &startedAt, MonitorsChecked: len(monitors)}, nil
}

func (s *monitorService) load(ctx context.Context) (*model.StatusDocument, error) {
	doc, found, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load status: %w", err)
	}
	if !found {
		doc = model.DefaultStatusDocument()
	}
	doc.Normalize()
	return doc, nil
}
