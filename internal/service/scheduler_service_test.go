package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/service"
	servicemocks "github.com/popeskul/moments-broadcast/internal/service/mocks"
)

func TestSchedulerService_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newRepoMocks(t, ctrl)
	dispatcher := servicemocks.NewMockDispatchService(ctrl)

	repo.moments.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), 10).Return(nil, nil).AnyTimes()

	schedulerService := service.NewSchedulerService(testConfig(), repo.repo, dispatcher, zap.NewNop())

	assert.False(t, schedulerService.IsRunning())

	require.NoError(t, schedulerService.Start())
	assert.True(t, schedulerService.IsRunning())
	assert.Error(t, schedulerService.Start(), "second start must fail")

	require.NoError(t, schedulerService.Stop())
	assert.False(t, schedulerService.IsRunning())
	assert.Error(t, schedulerService.Stop())
}

func TestSchedulerService_DispatchesDueMoments(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newRepoMocks(t, ctrl)
	dispatcher := servicemocks.NewMockDispatchService(ctrl)

	var (
		mu     sync.Mutex
		queued []string
	)
	done := make(chan struct{})

	before := time.Now()
	repo.moments.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), 10).DoAndReturn(
		func(_ context.Context, now time.Time, _ int) ([]*models.Moment, error) {
			assert.False(t, now.Before(before))
			return []*models.Moment{{ID: "m-1"}, {ID: "m-2"}}, nil
		})
	dispatcher.EXPECT().EnqueueClaimedMoment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			queued = append(queued, id)
			if len(queued) == 2 {
				close(done)
			}
			return nil
		}).Times(2)

	schedulerService := service.NewSchedulerService(testConfig(), repo.repo, dispatcher, zap.NewNop())
	require.NoError(t, schedulerService.Start())

	waitFor(t, done)
	require.NoError(t, schedulerService.Stop())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"m-1", "m-2"}, queued)
}

func TestSchedulerService_ContinuesAfterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newRepoMocks(t, ctrl)
	dispatcher := servicemocks.NewMockDispatchService(ctrl)
	done := make(chan struct{})

	repo.moments.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time, int) ([]*models.Moment, error) {
			defer close(done)
			return nil, errors.New("db down")
		})

	schedulerService := service.NewSchedulerService(testConfig(), repo.repo, dispatcher, zap.NewNop())
	require.NoError(t, schedulerService.Start())

	waitFor(t, done)
	assert.True(t, schedulerService.IsRunning())
	require.NoError(t, schedulerService.Stop())
}

func TestSchedulerService_ConcurrentAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newRepoMocks(t, ctrl)
	dispatcher := servicemocks.NewMockDispatchService(ctrl)

	repo.moments.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	schedulerService := service.NewSchedulerService(testConfig(), repo.repo, dispatcher, zap.NewNop())
	require.NoError(t, schedulerService.Start())

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = schedulerService.IsRunning()
				_ = schedulerService.Start()
				time.Sleep(5 * time.Millisecond)
			}
		}()
	}
	wg.Wait()

	require.NoError(t, schedulerService.Stop())
	assert.False(t, schedulerService.IsRunning())
}
