package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/repository"
)

type dispatchJob struct {
	momentID  string
	broadcast *models.Broadcast
	req       BroadcastRequest
}

type dispatchService struct {
	cfg        config.DispatcherConfig
	repo       repository.Repository
	moments    MomentService
	broadcasts BroadcastService
	logger     *zap.Logger

	mu       sync.Mutex
	running  bool
	queue    chan dispatchJob
	runCtx   context.Context
	cancel   context.CancelFunc
	inFlight map[string]struct{}
	workerWG sync.WaitGroup
}

func NewDispatchService(
	cfg config.DispatcherConfig,
	repo repository.Repository,
	moments MomentService,
	broadcasts BroadcastService,
	logger *zap.Logger,
) DispatchService {
	return &dispatchService{
		cfg:        cfg,
		repo:       repo,
		moments:    moments,
		broadcasts: broadcasts,
		logger:     logger.With(zap.String("component", "dispatcher")),
		inFlight:   make(map[string]struct{}),
	}
}

// Start launches the worker pool. Jobs run on a context derived from ctx,
// never on the context of the request that submitted them.
func (d *dispatchService) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return ErrDispatcherRunning
	}

	workers := d.cfg.Workers
	if workers <= 0 {
		workers = 2
	}
	size := d.cfg.QueueSize
	if size <= 0 {
		size = 64
	}

	d.queue = make(chan dispatchJob, size)
	d.runCtx, d.cancel = context.WithCancel(ctx)
	d.running = true

	queue, runCtx := d.queue, d.runCtx
	d.workerWG.Add(workers)
	for i := 0; i < workers; i++ {
		idx := i
		go func() {
			defer d.workerWG.Done()
			for job := range queue {
				d.run(runCtx, idx, job)
			}
		}()
	}

	d.logger.Info("Dispatcher started", zap.Int("workers", workers), zap.Int("queue_size", size))
	return nil
}

// Stop refuses new jobs and waits for queued ones to finish. If ctx ends
// first the running jobs are cancelled and ctx.Err() is returned.
func (d *dispatchService) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return ErrDispatcherStopped
	}
	d.running = false
	close(d.queue)
	cancel := d.cancel
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.workerWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		cancel()
		d.logger.Info("Dispatcher stopped")
		return nil
	case <-ctx.Done():
		cancel()
		<-done
		d.logger.Warn("Dispatcher stopped before draining the queue", zap.Error(ctx.Err()))
		return ctx.Err()
	}
}

func (d *dispatchService) SubmitMoment(ctx context.Context, momentID string) error {
	if !d.isRunning() {
		return ErrDispatcherStopped
	}
	if d.isInFlight(momentID) {
		return ErrAlreadyDispatched
	}

	if err := d.repo.Moment().MarkBroadcasting(ctx, momentID); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidStatusTransition):
			return ErrAlreadyDispatched
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("moment %s: %w", momentID, ErrNotFound)
		}
		return fmt.Errorf("failed to claim moment: %w", err)
	}

	return d.EnqueueClaimedMoment(ctx, momentID)
}

func (d *dispatchService) EnqueueClaimedMoment(ctx context.Context, momentID string) error {
	err := d.enqueue(dispatchJob{momentID: momentID})
	if err == nil {
		return nil
	}

	d.logger.Error("Failed to queue moment", zap.String("moment_id", momentID), zap.Error(err))
	if markErr := d.repo.Moment().MarkFailed(ctx, momentID); markErr != nil {
		d.logger.Error("Failed to mark moment failed", zap.String("moment_id", momentID), zap.Error(markErr))
	}
	return err
}

// SubmitBroadcast queues a copy of broadcast, so the caller may keep reading
// its own record while a worker executes.
func (d *dispatchService) SubmitBroadcast(ctx context.Context, broadcast *models.Broadcast, req BroadcastRequest) error {
	record := *broadcast
	err := d.enqueue(dispatchJob{broadcast: &record, req: req})
	if err == nil {
		return nil
	}

	d.logger.Error("Failed to queue broadcast", zap.String("broadcast_id", broadcast.ID), zap.Error(err))
	if markErr := d.repo.Broadcast().MarkFailed(ctx, broadcast.ID, err.Error()); markErr != nil {
		d.logger.Error("Failed to mark broadcast failed", zap.String("broadcast_id", broadcast.ID), zap.Error(markErr))
	}
	return err
}

func (d *dispatchService) QueueLength() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.queue == nil {
		return 0
	}
	return len(d.queue)
}

func (d *dispatchService) enqueue(job dispatchJob) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return ErrDispatcherStopped
	}
	if job.momentID != "" {
		if _, ok := d.inFlight[job.momentID]; ok {
			return ErrAlreadyDispatched
		}
	}

	select {
	case d.queue <- job:
		if job.momentID != "" {
			d.inFlight[job.momentID] = struct{}{}
		}
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *dispatchService) run(ctx context.Context, worker int, job dispatchJob) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic in dispatch worker",
				zap.Int("worker", worker),
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())))
		}
		if job.momentID != "" {
			d.mu.Lock()
			delete(d.inFlight, job.momentID)
			d.mu.Unlock()
		}
	}()

	if job.momentID != "" {
		if _, err := d.moments.BroadcastMoment(ctx, job.momentID); err != nil {
			d.logger.Error("Moment job failed", zap.String("moment_id", job.momentID), zap.Error(err))
		}
		return
	}

	if _, err := d.broadcasts.Execute(ctx, job.broadcast, job.req); err != nil {
		d.logger.Error("Broadcast job failed", zap.String("broadcast_id", job.broadcast.ID), zap.Error(err))
	}
}

func (d *dispatchService) isRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

func (d *dispatchService) isInFlight(momentID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.inFlight[momentID]
	return ok
}
