package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/cache"
	"github.com/popeskul/moments-broadcast/internal/client"
	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/repository"
)

// Fanout sends one message to a list of recipients through the wire client
// and records each outcome. It is shared by sequential and batched delivery.
type Fanout struct {
	sender      WhatsAppSender
	repo        repository.Repository
	cache       cache.DeliveryCache
	countryCode string
	logger      *zap.Logger
}

func NewFanout(
	sender WhatsAppSender,
	repo repository.Repository,
	deliveryCache cache.DeliveryCache,
	countryCode string,
	logger *zap.Logger,
) *Fanout {
	return &Fanout{
		sender:      sender,
		repo:        repo,
		cache:       deliveryCache,
		countryCode: countryCode,
		logger:      logger,
	}
}

// Deliver attempts every recipient once, in order, waiting on pacer before
// each provider call, media follow-ups included. Recipient failures are
// counted, never returned. If ctx ends the remaining recipients are counted
// as failed without being sent.
func (f *Fanout) Deliver(
	ctx context.Context,
	broadcastID, batchID string,
	recipients []string,
	message string,
	mediaURLs []string,
	pacer *Pacer,
) BatchOutcome {
	var outcome BatchOutcome

	for i, recipient := range recipients {
		if err := pacer.Wait(ctx); err != nil {
			skipped := len(recipients) - i
			outcome.FailureCount += skipped
			f.logger.Warn("Delivery interrupted",
				zap.String("broadcast_id", broadcastID),
				zap.String("batch_id", batchID),
				zap.Int("skipped", skipped),
				zap.Error(err))
			break
		}

		result := f.sender.Send(ctx, recipient, message)
		if result.Delivered {
			outcome.SuccessCount++
		} else {
			outcome.FailureCount++
		}

		f.record(ctx, broadcastID, batchID, recipient, result)

		if result.Delivered {
			f.sendMedia(ctx, broadcastID, recipient, mediaURLs, pacer)
		}
	}

	return outcome
}

// sendMedia follows a delivered text with one message per media URL. Media
// failures are logged only and never change the recipient outcome.
func (f *Fanout) sendMedia(ctx context.Context, broadcastID, recipient string, mediaURLs []string, pacer *Pacer) {
	for _, mediaURL := range mediaURLs {
		if err := pacer.Wait(ctx); err != nil {
			return
		}
		if media := f.sender.SendMedia(ctx, recipient, mediaURL); !media.Delivered {
			f.logger.Warn("Failed to deliver media",
				zap.String("broadcast_id", broadcastID),
				zap.String("media_url", mediaURL),
				zap.Int("attempts", media.Attempts),
				zap.Error(media.Err))
		}
	}
}

// record stores the per-recipient outcome. Failures here are logged only.
func (f *Fanout) record(ctx context.Context, broadcastID, batchID, recipient string, result models.DeliveryResult) {
	phone := client.NormalizePhone(recipient, f.countryCode)

	delivery := &models.Delivery{
		ID:          uuid.NewString(),
		BroadcastID: broadcastID,
		PhoneNumber: phone,
		Status:      models.DeliveryStatusFailed,
		Attempts:    result.Attempts,
		CreatedAt:   time.Now(),
	}
	if batchID != "" {
		delivery.BatchID = sql.NullString{String: batchID, Valid: true}
	}
	if result.Delivered {
		delivery.Status = models.DeliveryStatusDelivered
	}
	if result.MessageID != "" {
		delivery.ProviderMessageID = sql.NullString{String: result.MessageID, Valid: true}
	}
	if result.Err != nil {
		delivery.Error = sql.NullString{String: result.Err.Error(), Valid: true}
	}

	if err := f.repo.Delivery().Create(ctx, delivery); err != nil {
		f.logger.Warn("Failed to record delivery",
			zap.String("broadcast_id", broadcastID),
			zap.Error(err))
	}

	if f.cache == nil || result.MessageID == "" {
		return
	}
	entry := cache.DeliveryEntry{BroadcastID: broadcastID, PhoneNumber: phone, SentAt: delivery.CreatedAt}
	if err := f.cache.StoreDelivery(ctx, result.MessageID, entry); err != nil {
		f.logger.Warn("Failed to cache provider message id",
			zap.String("message_id", result.MessageID),
			zap.Error(err))
	}
}
