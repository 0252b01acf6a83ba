package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/repository"
	"github.com/popeskul/moments-broadcast/internal/service"
)

func TestQueryService_ListBroadcasts(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	tests := []struct {
		name           string
		params         service.ListParams
		expectedFilter repository.BroadcastFilter
		expectedPage   int
		expectedLimit  int
	}{
		{
			name:           "defaults",
			params:         service.ListParams{},
			expectedFilter: repository.BroadcastFilter{Offset: 0, Limit: 20},
			expectedPage:   1,
			expectedLimit:  20,
		},
		{
			name:           "filters and page",
			params:         service.ListParams{MomentID: "m-1", Status: models.StatusCompleted, From: &from, To: &to, Page: 3, Limit: 10},
			expectedFilter: repository.BroadcastFilter{MomentID: "m-1", Status: models.StatusCompleted, From: &from, To: &to, Offset: 20, Limit: 10},
			expectedPage:   3,
			expectedLimit:  10,
		},
		{
			name:           "limit capped",
			params:         service.ListParams{Limit: 1000},
			expectedFilter: repository.BroadcastFilter{Limit: 100},
			expectedPage:   1,
			expectedLimit:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := newRepoMocks(t, ctrl)
			svc := service.NewQueryService(repo.repo)

			rows := []*models.Broadcast{{ID: "b-1"}}
			repo.broadcasts.EXPECT().List(gomock.Any(), tt.expectedFilter).Return(rows, int64(45), nil)

			page, err := svc.ListBroadcasts(context.Background(), tt.params)

			require.NoError(t, err)
			assert.Equal(t, rows, page.Broadcasts)
			assert.Equal(t, tt.expectedPage, page.Page)
			assert.Equal(t, tt.expectedLimit, page.Limit)
			assert.Equal(t, int64(45), page.Total)
		})
	}
}

func TestQueryService_ListBroadcasts_Failure(t *testing.T) {
	from := time.Now()
	to := from.Add(-time.Hour)

	tests := []struct {
		name   string
		params service.ListParams
	}{
		{name: "unknown status", params: service.ListParams{Status: "sent"}},
		{name: "inverted range", params: service.ListParams{From: &from, To: &to}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := newRepoMocks(t, ctrl)
			svc := service.NewQueryService(repo.repo)

			_, err := svc.ListBroadcasts(context.Background(), tt.params)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
}

func TestBroadcastPage_TotalPages(t *testing.T) {
	assert.Equal(t, 3, (&service.BroadcastPage{Limit: 20, Total: 45}).TotalPages())
	assert.Equal(t, 2, (&service.BroadcastPage{Limit: 20, Total: 40}).TotalPages())
	assert.Equal(t, 0, (&service.BroadcastPage{Limit: 20}).TotalPages())
	assert.Equal(t, 0, (&service.BroadcastPage{Total: 5}).TotalPages())
}

func TestQueryService_GetBroadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newRepoMocks(t, ctrl)
	svc := service.NewQueryService(repo.repo)

	broadcast := &models.Broadcast{ID: "b-1"}
	batches := []*models.BroadcastBatch{{ID: "batch-1", BatchNumber: 1}}
	repo.broadcasts.EXPECT().GetByID(gomock.Any(), "b-1").Return(broadcast, nil)
	repo.batches.EXPECT().ListByBroadcast(gomock.Any(), "b-1").Return(batches, nil)

	details, err := svc.GetBroadcast(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, broadcast, details.Broadcast)
	assert.Equal(t, batches, details.Batches)
}

func TestQueryService_GetBroadcast_Failure(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newRepoMocks(t, ctrl)
		svc := service.NewQueryService(repo.repo)

		repo.broadcasts.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, repository.ErrNotFound)

		_, err := svc.GetBroadcast(context.Background(), "missing")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("batches fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newRepoMocks(t, ctrl)
		svc := service.NewQueryService(repo.repo)

		repo.broadcasts.EXPECT().GetByID(gomock.Any(), "b-1").Return(&models.Broadcast{ID: "b-1"}, nil)
		repo.batches.EXPECT().ListByBroadcast(gomock.Any(), "b-1").Return(nil, errors.New("db down"))

		_, err := svc.GetBroadcast(context.Background(), "b-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrNotFound)
	})
}

func TestQueryService_GetAnalytics(t *testing.T) {
	tests := []struct {
		name         string
		days         int
		expectedDays int
	}{
		{name: "default window", days: 0, expectedDays: 7},
		{name: "custom window", days: 30, expectedDays: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := newRepoMocks(t, ctrl)
			svc := service.NewQueryService(repo.repo)
			now := time.Now()

			repo.broadcasts.EXPECT().Analytics(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, since time.Time) (*models.BroadcastAnalytics, error) {
					assert.WithinDuration(t, now.Add(-time.Duration(tt.expectedDays)*24*time.Hour), since, 5*time.Second)
					return &models.BroadcastAnalytics{TotalBroadcasts: 4, TotalRecipients: 200, TotalSuccess: 150, TotalFailures: 50}, nil
				})

			summary, err := svc.GetAnalytics(context.Background(), tt.days)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedDays, summary.Days)
			assert.Equal(t, 4, summary.TotalBroadcasts)
			assert.InDelta(t, 75.0, summary.SuccessRate(), 0.001)
		})
	}
}
