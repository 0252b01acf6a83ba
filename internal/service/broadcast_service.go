package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/repository"
)

type broadcastService struct {
	cfg     *config.Config
	repo    repository.Repository
	sender  WhatsAppSender
	batches BatchProcessor
	fanout  *Fanout
	logger  *zap.Logger
}

func NewBroadcastService(
	cfg *config.Config,
	repo repository.Repository,
	sender WhatsAppSender,
	batches BatchProcessor,
	fanout *Fanout,
	logger *zap.Logger,
) BroadcastService {
	return &broadcastService{
		cfg:     cfg,
		repo:    repo,
		sender:  sender,
		batches: batches,
		fanout:  fanout,
		logger:  logger,
	}
}

func (s *broadcastService) SendBroadcast(ctx context.Context, req BroadcastRequest) (*BroadcastResult, error) {
	broadcast, err := s.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.Execute(ctx, broadcast, req)
}

func (s *broadcastService) Create(ctx context.Context, req BroadcastRequest) (*models.Broadcast, error) {
	if err := ValidateRequest(req, s.cfg.Broadcast.MaxMessageLength, s.cfg.WhatsApp.CountryCode); err != nil {
		return nil, err
	}

	if err := s.sender.Ready(); err != nil {
		s.logger.Error("Refusing to broadcast without provider credentials", zap.Error(err))
		return nil, err
	}

	broadcast := &models.Broadcast{
		ID:               uuid.NewString(),
		Status:           models.StatusPending,
		RecipientCount:   len(req.Recipients),
		AuthorityContext: req.Authority,
	}
	if req.MomentID != "" {
		broadcast.MomentID = sql.NullString{String: req.MomentID, Valid: true}
	}

	if err := s.repo.Broadcast().Create(ctx, broadcast); err != nil {
		return nil, fmt.Errorf("failed to create broadcast: %w", err)
	}

	s.logger.Info("Broadcast created",
		zap.String("broadcast_id", broadcast.ID),
		zap.String("moment_id", req.MomentID),
		zap.Int("recipients", broadcast.RecipientCount))

	return broadcast, nil
}

// Execute moves the broadcast to processing, delivers to every recipient and
// completes it. Lists above the batch threshold are split into batches that
// run one after another; shorter lists are sent sequentially at the slower
// pace. A failed persistence step after processing started returns an error
// and leaves the broadcast in processing.
func (s *broadcastService) Execute(ctx context.Context, broadcast *models.Broadcast, req BroadcastRequest) (*BroadcastResult, error) {
	logger := s.logger.With(zap.String("broadcast_id", broadcast.ID))

	if err := s.repo.Broadcast().MarkProcessing(ctx, broadcast.ID); err != nil {
		return nil, fmt.Errorf("failed to mark broadcast processing: %w", err)
	}
	broadcast.Status = models.StatusProcessing

	result := &BroadcastResult{
		BroadcastID:     broadcast.ID,
		TotalRecipients: len(req.Recipients),
	}

	var outcome BatchOutcome
	if len(req.Recipients) > s.cfg.Broadcast.BatchThreshold {
		batched, batchCount, err := s.executeBatched(ctx, broadcast, req)
		result.Batches = batchCount
		if err != nil {
			return nil, err
		}
		outcome = batched
	} else {
		logger.Info("Sending broadcast sequentially", zap.Int("recipients", len(req.Recipients)))
		pacer := NewPacer(s.cfg.Broadcast.SequentialDelay())
		outcome = s.fanout.Deliver(ctx, broadcast.ID, "", req.Recipients, req.Message, req.MediaURLs, pacer)
	}

	result.SuccessCount = outcome.SuccessCount
	result.FailureCount = outcome.FailureCount

	if err := s.repo.Broadcast().Complete(ctx, broadcast.ID, outcome.SuccessCount, outcome.FailureCount); err != nil {
		return nil, fmt.Errorf("failed to complete broadcast: %w", err)
	}
	broadcast.Status = models.StatusCompleted
	broadcast.SuccessCount = outcome.SuccessCount
	broadcast.FailureCount = outcome.FailureCount

	logger.Info("Broadcast completed",
		zap.Int("success", result.SuccessCount),
		zap.Int("failed", result.FailureCount),
		zap.Int("batches", result.Batches))

	return result, nil
}

func (s *broadcastService) executeBatched(ctx context.Context, broadcast *models.Broadcast, req BroadcastRequest) (BatchOutcome, int, error) {
	parts := Partition(req.Recipients, s.cfg.Broadcast.BatchSize)
	if parts == nil {
		parts = [][]string{req.Recipients}
	}

	batches := make([]*models.BroadcastBatch, len(parts))
	for i, part := range parts {
		batches[i] = &models.BroadcastBatch{
			ID:          uuid.NewString(),
			BroadcastID: broadcast.ID,
			BatchNumber: i + 1,
			Recipients:  pq.StringArray(part),
			Status:      models.StatusPending,
		}
	}

	if err := s.repo.Batch().CreateBatches(ctx, batches); err != nil {
		reason := fmt.Sprintf("failed to create batches: %v", err)
		if markErr := s.repo.Broadcast().MarkFailed(ctx, broadcast.ID, reason); markErr != nil {
			s.logger.Error("Failed to mark broadcast failed",
				zap.String("broadcast_id", broadcast.ID),
				zap.Error(markErr))
		} else {
			broadcast.Status = models.StatusFailed
		}
		return BatchOutcome{}, 0, fmt.Errorf("failed to create batches: %w", err)
	}

	s.logger.Info("Sending broadcast in batches",
		zap.String("broadcast_id", broadcast.ID),
		zap.Int("recipients", len(req.Recipients)),
		zap.Int("batches", len(batches)))

	pacer := NewPacer(s.cfg.Broadcast.BatchDelay())

	var total BatchOutcome
	for _, batch := range batches {
		outcome, err := s.batches.Process(ctx, batch, req.Message, req.MediaURLs, pacer)
		total.add(outcome)
		if err != nil {
			return total, len(batches), fmt.Errorf("failed to process batch: %w", err)
		}
	}

	return total, len(batches), nil
}
