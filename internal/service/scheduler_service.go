package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/repository"
	"github.com/popeskul/moments-broadcast/internal/scheduler"
)

type schedulerService struct {
	scheduler  *scheduler.Scheduler
	repo       repository.Repository
	dispatcher DispatchService
	batchSize  int
	logger     *zap.Logger
}

func NewSchedulerService(
	cfg *config.Config,
	repo repository.Repository,
	dispatcher DispatchService,
	logger *zap.Logger,
) SchedulerService {
	interval := time.Duration(cfg.Scheduler.IntervalSeconds) * time.Second

	svc := &schedulerService{
		repo:       repo,
		dispatcher: dispatcher,
		batchSize:  cfg.Scheduler.BatchSize,
		logger:     logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, "moments", interval, svc.dispatchDueMoments)
	return svc
}

func (s *schedulerService) Start() error {
	ctx := context.Background()
	return s.scheduler.Start(ctx)
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

// dispatchDueMoments claims scheduled moments whose time has come and hands
// them to the dispatcher. A claimed moment is never claimed again.
func (s *schedulerService) dispatchDueMoments(ctx context.Context) error {
	limit := s.batchSize
	if limit <= 0 {
		limit = 10
	}

	moments, err := s.repo.Moment().ClaimDue(ctx, time.Now(), limit)
	if err != nil {
		return fmt.Errorf("failed to claim due moments: %w", err)
	}
	if len(moments) == 0 {
		return nil
	}

	s.logger.Info("Dispatching scheduled moments", zap.Int("count", len(moments)))

	var queued int
	for _, m := range moments {
		if err := s.dispatcher.EnqueueClaimedMoment(ctx, m.ID); err != nil {
			continue
		}
		queued++
	}

	if queued < len(moments) {
		return fmt.Errorf("queued %d of %d due moments", queued, len(moments))
	}
	return nil
}
