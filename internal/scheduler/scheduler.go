// Package scheduler runs the periodic membership sweep.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/festy23/hackteams/internal/cleanup"
	"github.com/festy23/hackteams/internal/config"
)

// Scheduler triggers the fleet sweep on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	cleanup cleanup.Service
	cfg     config.SweepConfig
	logger  *zap.SugaredLogger
}

// New creates a new scheduler instance.
func New(cln cleanup.Service, cfg config.SweepConfig, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		cleanup: cln,
		cfg:     cfg,
		logger:  logger,
	}
}

// Start registers the sweep job and starts the cron loop. It is a
// no-op when the sweep is disabled by configuration.
func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Infow("sweep scheduler disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if _, err := s.cleanup.RunSweep(context.Background()); err != nil {
			s.logger.Errorw("scheduled sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Infow("sweep scheduler started", "schedule", s.cfg.Schedule)
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Infow("sweep scheduler stopped")
}
