package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/repository"
)

type batchProcessor struct {
	repo   repository.Repository
	fanout *Fanout
	logger *zap.Logger
}

func NewBatchProcessor(repo repository.Repository, fanout *Fanout, logger *zap.Logger) BatchProcessor {
	return &batchProcessor{
		repo:   repo,
		fanout: fanout,
		logger: logger,
	}
}

// Process runs one pending batch to completion. The returned error is about
// persisting batch state; recipient failures only show up in the outcome.
func (p *batchProcessor) Process(
	ctx context.Context,
	batch *models.BroadcastBatch,
	message string,
	mediaURLs []string,
	pacer *Pacer,
) (BatchOutcome, error) {
	logger := p.logger.With(
		zap.String("broadcast_id", batch.BroadcastID),
		zap.Int("batch_number", batch.BatchNumber))

	if err := p.repo.Batch().MarkProcessing(ctx, batch.ID); err != nil {
		return BatchOutcome{}, fmt.Errorf("failed to mark batch %d processing: %w", batch.BatchNumber, err)
	}
	batch.Status = models.StatusProcessing

	logger.Info("Processing batch", zap.Int("recipients", len(batch.Recipients)))

	outcome := p.fanout.Deliver(ctx, batch.BroadcastID, batch.ID, batch.Recipients, message, mediaURLs, pacer)

	if err := p.repo.Batch().Complete(ctx, batch.ID, outcome.SuccessCount, outcome.FailureCount); err != nil {
		return outcome, fmt.Errorf("failed to complete batch %d: %w", batch.BatchNumber, err)
	}
	batch.Status = models.StatusCompleted
	batch.SuccessCount = outcome.SuccessCount
	batch.FailureCount = outcome.FailureCount

	logger.Info("Batch completed",
		zap.Int("success", outcome.SuccessCount),
		zap.Int("failed", outcome.FailureCount))

	return outcome, nil
}
