package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/client"
	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/repository"
)

type momentService struct {
	repo        repository.Repository
	recipients  RecipientService
	renderer    MessageRenderer
	broadcasts  BroadcastService
	countryCode string
	logger      *zap.Logger
}

func NewMomentService(
	repo repository.Repository,
	recipients RecipientService,
	renderer MessageRenderer,
	broadcasts BroadcastService,
	countryCode string,
	logger *zap.Logger,
) MomentService {
	return &momentService{
		repo:        repo,
		recipients:  recipients,
		renderer:    renderer,
		broadcasts:  broadcasts,
		countryCode: countryCode,
		logger:      logger,
	}
}

// BroadcastMoment sends a moment that was already moved to broadcasting.
// The moment ends up broadcasted on success and failed otherwise.
func (s *momentService) BroadcastMoment(ctx context.Context, momentID string) (*BroadcastResult, error) {
	logger := s.logger.With(zap.String("moment_id", momentID))

	moment, err := s.repo.Moment().GetByID(ctx, momentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("moment %s: %w", momentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load moment: %w", err)
	}

	result, err := s.broadcast(ctx, moment)
	if err != nil {
		logger.Error("Moment broadcast failed", zap.Error(err))
		if markErr := s.repo.Moment().MarkFailed(ctx, momentID); markErr != nil {
			logger.Error("Failed to mark moment failed", zap.Error(markErr))
		}
		return nil, err
	}

	if err := s.repo.Moment().MarkBroadcasted(ctx, momentID); err != nil {
		return result, fmt.Errorf("failed to mark moment broadcasted: %w", err)
	}

	logger.Info("Moment broadcasted",
		zap.String("broadcast_id", result.BroadcastID),
		zap.Int("success", result.SuccessCount),
		zap.Int("failed", result.FailureCount))

	return result, nil
}

func (s *momentService) broadcast(ctx context.Context, moment *models.Moment) (*BroadcastResult, error) {
	var authority *models.AuthorityProfile
	if moment.CreatedBy.Valid {
		authority = s.recipients.LookupAuthority(ctx, moment.CreatedBy.String)
	}

	all, err := s.recipients.ResolveRecipients(ctx, Criteria{Region: moment.Region, Category: moment.Category})
	if err != nil {
		return nil, err
	}

	filtered := s.recipients.ApplyAuthorityFilter(s.reachable(all), authority)
	if len(filtered.Recipients) == 0 {
		return nil, ErrNoRecipients
	}

	req := BroadcastRequest{
		MomentID:   moment.ID,
		Message:    s.renderer.Render(moment),
		Recipients: filtered.Recipients,
		MediaURLs:  moment.MediaURLs,
	}
	if authority != nil {
		req.Authority = &models.AuthoritySnapshot{
			AuthorityID:             authority.ID,
			AuthorityLevel:          authority.AuthorityLevel,
			BlastRadius:             filtered.BlastRadius,
			Scope:                   authority.Scope,
			OriginalSubscriberCount: filtered.OriginalCount,
			FilteredSubscriberCount: len(filtered.Recipients),
		}
	}

	return s.broadcasts.SendBroadcast(ctx, req)
}

// reachable drops stored numbers that can never be delivered so a single bad
// subscription row does not fail request validation for everyone.
func (s *momentService) reachable(phones []string) []string {
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		if client.IsValidPhone(client.NormalizePhone(p, s.countryCode)) {
			out = append(out, p)
			continue
		}
		s.logger.Warn("Skipping subscriber with invalid phone number", zap.String("phone", p))
	}
	return out
}
