package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	cachemocks "github.com/popeskul/moments-broadcast/internal/cache/mocks"
	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/repository"
	"github.com/popeskul/moments-broadcast/internal/service"
)

func TestRecipientService_ResolveRecipients(t *testing.T) {
	tests := []struct {
		name             string
		filterByCategory bool
		expectedFilter   repository.SubscriberFilter
	}{
		{
			name:           "category ignored by default",
			expectedFilter: repository.SubscriberFilter{Region: "KZN"},
		},
		{
			name:             "category applied when enabled",
			filterByCategory: true,
			expectedFilter:   repository.SubscriberFilter{Region: "KZN", Category: "Health"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := newRepoMocks(t, ctrl)
			cfg := testConfig().Broadcast
			cfg.FilterByCategory = tt.filterByCategory
			svc := service.NewRecipientService(&cfg, repo.repo, nil, zap.NewNop())

			repo.subs.EXPECT().ListPhoneNumbers(gomock.Any(), tt.expectedFilter).Return(phones(3), nil)

			got, err := svc.ResolveRecipients(context.Background(), service.Criteria{Region: "KZN", Category: "Health"})

			require.NoError(t, err)
			assert.Equal(t, phones(3), got)
		})
	}
}

func TestRecipientService_ResolveRecipients_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newRepoMocks(t, ctrl)
	cfg := testConfig().Broadcast
	svc := service.NewRecipientService(&cfg, repo.repo, nil, zap.NewNop())

	repo.subs.EXPECT().ListPhoneNumbers(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	got, err := svc.ResolveRecipients(context.Background(), service.Criteria{})

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestRecipientService_LookupAuthority(t *testing.T) {
	profile := &models.AuthorityProfile{ID: "auth-1", UserIdentifier: "admin@example.org", BlastRadius: 500}

	tests := []struct {
		name     string
		setup    func(repo *repoMocks, c *cachemocks.MockAuthorityCache)
		expected *models.AuthorityProfile
	}{
		{
			name: "cache hit",
			setup: func(_ *repoMocks, c *cachemocks.MockAuthorityCache) {
				c.EXPECT().GetAuthority(gomock.Any(), "admin@example.org").Return(profile, true, nil)
			},
			expected: profile,
		},
		{
			name: "cached absence",
			setup: func(_ *repoMocks, c *cachemocks.MockAuthorityCache) {
				c.EXPECT().GetAuthority(gomock.Any(), "admin@example.org").Return(nil, true, nil)
			},
			expected: nil,
		},
		{
			name: "cache miss loads and stores",
			setup: func(repo *repoMocks, c *cachemocks.MockAuthorityCache) {
				c.EXPECT().GetAuthority(gomock.Any(), "admin@example.org").Return(nil, false, nil)
				repo.authority.EXPECT().GetActiveByUser(gomock.Any(), "admin@example.org").Return(profile, nil)
				c.EXPECT().StoreAuthority(gomock.Any(), "admin@example.org", profile).Return(nil)
			},
			expected: profile,
		},
		{
			name: "no profile is cached",
			setup: func(repo *repoMocks, c *cachemocks.MockAuthorityCache) {
				c.EXPECT().GetAuthority(gomock.Any(), "admin@example.org").Return(nil, false, nil)
				repo.authority.EXPECT().GetActiveByUser(gomock.Any(), "admin@example.org").Return(nil, repository.ErrNotFound)
				c.EXPECT().StoreAuthority(gomock.Any(), "admin@example.org", gomock.Nil()).Return(nil)
			},
			expected: nil,
		},
		{
			name: "database error fails open",
			setup: func(repo *repoMocks, c *cachemocks.MockAuthorityCache) {
				c.EXPECT().GetAuthority(gomock.Any(), "admin@example.org").Return(nil, false, nil)
				repo.authority.EXPECT().GetActiveByUser(gomock.Any(), "admin@example.org").Return(nil, errors.New("timeout"))
			},
			expected: nil,
		},
		{
			name: "cache error falls back to database",
			setup: func(repo *repoMocks, c *cachemocks.MockAuthorityCache) {
				c.EXPECT().GetAuthority(gomock.Any(), "admin@example.org").Return(nil, false, errors.New("redis down"))
				repo.authority.EXPECT().GetActiveByUser(gomock.Any(), "admin@example.org").Return(profile, nil)
				c.EXPECT().StoreAuthority(gomock.Any(), "admin@example.org", profile).Return(errors.New("redis down"))
			},
			expected: profile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := newRepoMocks(t, ctrl)
			authorityCache := cachemocks.NewMockAuthorityCache(ctrl)
			cfg := testConfig().Broadcast
			svc := service.NewRecipientService(&cfg, repo.repo, authorityCache, zap.NewNop())

			tt.setup(repo, authorityCache)

			assert.Equal(t, tt.expected, svc.LookupAuthority(context.Background(), "admin@example.org"))
		})
	}
}

func TestRecipientService_LookupAuthority_EmptyUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newRepoMocks(t, ctrl)
	cfg := testConfig().Broadcast
	svc := service.NewRecipientService(&cfg, repo.repo, cachemocks.NewMockAuthorityCache(ctrl), zap.NewNop())

	assert.Nil(t, svc.LookupAuthority(context.Background(), ""))
}

func TestRecipientService_ApplyAuthorityFilter(t *testing.T) {
	tests := []struct {
		name              string
		recipients        int
		authority         *models.AuthorityProfile
		expectedCount     int
		expectedRadius    int
		expectedTruncated bool
	}{
		{name: "no authority uses default cap", recipients: 150, expectedCount: 100, expectedRadius: 100, expectedTruncated: true},
		{name: "no authority under cap", recipients: 40, expectedCount: 40, expectedRadius: 100},
		{name: "authority radius", recipients: 150, authority: &models.AuthorityProfile{BlastRadius: 25}, expectedCount: 25, expectedRadius: 25, expectedTruncated: true},
		{name: "zero radius falls back to default", recipients: 150, authority: &models.AuthorityProfile{}, expectedCount: 100, expectedRadius: 100, expectedTruncated: true},
		{name: "radius above list size", recipients: 10, authority: &models.AuthorityProfile{BlastRadius: 1000}, expectedCount: 10, expectedRadius: 1000},
		{name: "empty list", recipients: 0, expectedCount: 0, expectedRadius: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.BroadcastConfig{DefaultBlastRadius: 100}
			svc := service.NewRecipientService(&cfg, nil, nil, zap.NewNop())
			recipients := phones(tt.recipients)

			result := svc.ApplyAuthorityFilter(recipients, tt.authority)

			assert.Len(t, result.Recipients, tt.expectedCount)
			assert.Equal(t, tt.recipients, result.OriginalCount)
			assert.Equal(t, tt.expectedRadius, result.BlastRadius)
			assert.Equal(t, tt.expectedTruncated, result.Truncated)
			assert.Equal(t, recipients[:tt.expectedCount], result.Recipients, "keeps the first recipients in order")
		})
	}
}
