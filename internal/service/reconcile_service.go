package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/repository"
)

const reconcileListLimit = 100

type reconcileService struct {
	schedule   string
	staleAfter time.Duration
	repo       repository.Repository
	logger     *zap.Logger

	mu sync.Mutex
	c  *cron.Cron
}

func NewReconcileService(cfg config.ReconcileConfig, repo repository.Repository, logger *zap.Logger) ReconcileService {
	staleAfter := time.Duration(cfg.StaleAfterMinutes) * time.Minute
	if staleAfter <= 0 {
		staleAfter = 30 * time.Minute
	}
	return &reconcileService{
		schedule:   cfg.Schedule,
		staleAfter: staleAfter,
		repo:       repo,
		logger:     logger.With(zap.String("component", "reconcile")),
	}
}

// Start registers the sweep on the configured cron schedule. Standard five
// field expressions and descriptors such as "@every 10m" are accepted.
func (s *reconcileService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.c != nil {
		return nil
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))
	if _, err := c.AddFunc(s.schedule, s.runSweep); err != nil {
		return fmt.Errorf("invalid reconcile schedule %q: %w", s.schedule, err)
	}
	c.Start()
	s.c = c

	s.logger.Info("Reconciliation scheduled", zap.String("schedule", s.schedule), zap.Duration("stale_after", s.staleAfter))
	return nil
}

func (s *reconcileService) Stop() {
	s.mu.Lock()
	c := s.c
	s.c = nil
	s.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

func (s *reconcileService) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.Sweep(ctx); err != nil {
		s.logger.Error("Reconciliation sweep failed", zap.Error(err))
	}
}

// Sweep reports broadcasts and batches left in pending or processing for
// longer than the stale threshold. Nothing is resent or modified.
func (s *reconcileService) Sweep(ctx context.Context) (*ReconcileReport, error) {
	olderThan := time.Now().Add(-s.staleAfter)
	report := &ReconcileReport{}

	broadcasts, err := s.repo.Broadcast().ListStale(ctx, olderThan, reconcileListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale broadcasts: %w", err)
	}
	for _, b := range broadcasts {
		report.StaleBroadcasts = append(report.StaleBroadcasts, b.ID)
		s.logger.Warn("Broadcast stuck",
			zap.String("broadcast_id", b.ID),
			zap.String("status", string(b.Status)),
			zap.Time("updated_at", b.UpdatedAt))
	}

	batches, err := s.repo.Batch().ListStale(ctx, olderThan, reconcileListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale batches: %w", err)
	}
	for _, b := range batches {
		report.StaleBatches = append(report.StaleBatches, b.ID)
		s.logger.Warn("Batch stuck",
			zap.String("broadcast_id", b.BroadcastID),
			zap.Int("batch_number", b.BatchNumber),
			zap.String("status", string(b.Status)),
			zap.Time("updated_at", b.UpdatedAt))
	}

	if len(report.StaleBroadcasts) > 0 || len(report.StaleBatches) > 0 {
		s.logger.Warn("Reconciliation found stuck records",
			zap.Int("broadcasts", len(report.StaleBroadcasts)),
			zap.Int("batches", len(report.StaleBatches)))
	}

	return report, nil
}
