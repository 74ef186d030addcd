package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"campushub/internal/service"
)

// SweepScheduler triggers uptime sweeps on a cron schedule inside the process.
// The sweep's own minimum-interval guard still applies, so a schedule that
// overlaps with the public trigger endpoint never probes more often than allowed.
type SweepScheduler struct {
	cronEngine *cron.Cron
	monitor    service.MonitorService
	log        *zap.Logger
	spec       string
	timeout    time.Duration
}

// NewSweepScheduler builds a scheduler for spec, a standard five-field cron expression.
func NewSweepScheduler(monitor service.MonitorService, log *zap.Logger, spec string, timeout time.Duration) *SweepScheduler {
	return &SweepScheduler{
		cronEngine: cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		monitor:    monitor,
		log:        log,
		spec:       spec,
		timeout:    timeout,
	}
}

// Start registers the sweep job and starts the cron engine.
func (s *SweepScheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.spec, s.runOnce); err != nil {
		return fmt.Errorf("add sweep job %q: %w", s.spec, err)
	}
	s.cronEngine.Start()
	s.log.Info("sweep scheduler started", zap.String("spec", s.spec))
	return nil
}

// Stop halts the engine and waits for a running sweep to finish or ctx to expire.
func (s *SweepScheduler) Stop(ctx context.Context) {
	done := s.cronEngine.Stop()
	select {
	case <-done.Done():
		s.log.Info("sweep scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("sweep scheduler stop timed out")
	}
}

func (s *SweepScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	res, err := s.monitor.RunSweep(ctx)
	if err != nil {
		s.log.Error("scheduled sweep failed", zap.Error(err))
		return
	}
	if res.Skipped {
		s.log.Debug("scheduled sweep skipped", zap.String("reason", res.Reason))
		return
	}
	s.log.Info("scheduled sweep completed", zap.Int("monitors", res.MonitorsChecked))
}
