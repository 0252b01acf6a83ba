package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/cache"
	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/repository"
)

type recipientService struct {
	cfg    *config.BroadcastConfig
	repo   repository.Repository
	cache  cache.AuthorityCache
	logger *zap.Logger
}

func NewRecipientService(
	cfg *config.BroadcastConfig,
	repo repository.Repository,
	authorityCache cache.AuthorityCache,
	logger *zap.Logger,
) RecipientService {
	return &recipientService{
		cfg:    cfg,
		repo:   repo,
		cache:  authorityCache,
		logger: logger,
	}
}

// ResolveRecipients returns the phone numbers of opted-in subscribers that
// match the criteria, oldest subscription first.
func (s *recipientService) ResolveRecipients(ctx context.Context, criteria Criteria) ([]string, error) {
	filter := repository.SubscriberFilter{Region: criteria.Region}
	if s.cfg.FilterByCategory {
		filter.Category = criteria.Category
	}

	phones, err := s.repo.Subscriber().ListPhoneNumbers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}
	return phones, nil
}

// LookupAuthority returns the active authority profile of a sender, or nil.
// Lookup errors are logged and treated as "no authority".
func (s *recipientService) LookupAuthority(ctx context.Context, userIdentifier string) *models.AuthorityProfile {
	if userIdentifier == "" {
		return nil
	}

	if s.cache != nil {
		profile, hit, err := s.cache.GetAuthority(ctx, userIdentifier)
		if err != nil {
			s.logger.Warn("Authority cache read failed", zap.String("user", userIdentifier), zap.Error(err))
		} else if hit {
			return profile
		}
	}

	profile, err := s.repo.Authority().GetActiveByUser(ctx, userIdentifier)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		profile = nil
	case err != nil:
		s.logger.Error("Authority lookup failed", zap.String("user", userIdentifier), zap.Error(err))
		return nil
	}

	if s.cache != nil {
		if err := s.cache.StoreAuthority(ctx, userIdentifier, profile); err != nil {
			s.logger.Warn("Authority cache write failed", zap.String("user", userIdentifier), zap.Error(err))
		}
	}

	return profile
}

// ApplyAuthorityFilter caps recipients at the sender's blast radius, keeping
// the first ones in resolver order.
func (s *recipientService) ApplyAuthorityFilter(recipients []string, authority *models.AuthorityProfile) FilterResult {
	limit := s.cfg.DefaultBlastRadius
	if authority != nil && authority.BlastRadius > 0 {
		limit = authority.BlastRadius
	}

	result := FilterResult{
		Recipients:    recipients,
		OriginalCount: len(recipients),
		BlastRadius:   limit,
	}
	if limit > 0 && len(recipients) > limit {
		result.Recipients = recipients[:limit:limit]
		result.Truncated = true
		s.logger.Info("Recipients truncated to blast radius",
			zap.Int("original", len(recipients)),
			zap.Int("blast_radius", limit))
	}
	return result
}
