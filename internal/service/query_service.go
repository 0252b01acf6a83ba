package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/popeskul/moments-broadcast/internal/repository"
)

const (
	defaultPageLimit     = 20
	maxPageLimit         = 100
	defaultAnalyticsDays = 7
)

type queryService struct {
	repo repository.Repository
}

func NewQueryService(repo repository.Repository) QueryService {
	return &queryService{repo: repo}
}

func (s *queryService) ListBroadcasts(ctx context.Context, params ListParams) (*BroadcastPage, error) {
	if params.Status != "" && !params.Status.Valid() {
		return nil, &ValidationError{Fields: []string{fmt.Sprintf("status: unknown value %q", params.Status)}}
	}
	if params.From != nil && params.To != nil && params.From.After(*params.To) {
		return nil, &ValidationError{Fields: []string{"from: must not be after to"}}
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	broadcasts, total, err := s.repo.Broadcast().List(ctx, repository.BroadcastFilter{
		MomentID: params.MomentID,
		Status:   params.Status,
		From:     params.From,
		To:       params.To,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list broadcasts: %w", err)
	}

	return &BroadcastPage{
		Broadcasts: broadcasts,
		Page:       page,
		Limit:      limit,
		Total:      total,
	}, nil
}

func (s *queryService) GetBroadcast(ctx context.Context, id string) (*BroadcastDetails, error) {
	broadcast, err := s.repo.Broadcast().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("broadcast %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get broadcast: %w", err)
	}

	batches, err := s.repo.Batch().ListByBroadcast(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	return &BroadcastDetails{Broadcast: broadcast, Batches: batches}, nil
}

// GetAnalytics summarizes broadcasts created in the last days days.
func (s *queryService) GetAnalytics(ctx context.Context, days int) (*AnalyticsSummary, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}

	since := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	analytics, err := s.repo.Broadcast().Analytics(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}

	return &AnalyticsSummary{Days: days, BroadcastAnalytics: *analytics}, nil
}
