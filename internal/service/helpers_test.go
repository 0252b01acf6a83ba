package service_test

import (
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/repository/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		WhatsApp: config.WhatsAppConfig{
			CountryCode: "27",
			MaxAttempts: 3,
		},
		Broadcast: config.BroadcastConfig{
			BatchSize:          50,
			BatchThreshold:     50,
			BatchDelayMs:       0,
			SequentialDelayMs:  0,
			DefaultBlastRadius: 100,
			MaxMessageLength:   4096,
		},
		Dispatcher: config.DispatcherConfig{
			Workers:   1,
			QueueSize: 4,
		},
		Scheduler: config.SchedulerConfig{
			IntervalSeconds: 60,
			BatchSize:       10,
		},
		Reconcile: config.ReconcileConfig{
			Schedule:          "@every 10m",
			StaleAfterMinutes: 30,
		},
	}
}

// phones returns n distinct valid South African mobile numbers.
func phones(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("2782%07d", i)
	}
	return out
}

type repoMocks struct {
	repo       *mocks.MockRepository
	broadcasts *mocks.MockBroadcastRepository
	batches    *mocks.MockBatchRepository
	deliveries *mocks.MockDeliveryRepository
	subs       *mocks.MockSubscriberRepository
	authority  *mocks.MockAuthorityRepository
	moments    *mocks.MockMomentRepository
}

func newRepoMocks(t *testing.T, ctrl *gomock.Controller) *repoMocks {
	t.Helper()
	m := &repoMocks{
		repo:       mocks.NewMockRepository(ctrl),
		broadcasts: mocks.NewMockBroadcastRepository(ctrl),
		batches:    mocks.NewMockBatchRepository(ctrl),
		deliveries: mocks.NewMockDeliveryRepository(ctrl),
		subs:       mocks.NewMockSubscriberRepository(ctrl),
		authority:  mocks.NewMockAuthorityRepository(ctrl),
		moments:    mocks.NewMockMomentRepository(ctrl),
	}
	m.repo.EXPECT().Broadcast().Return(m.broadcasts).AnyTimes()
	m.repo.EXPECT().Batch().Return(m.batches).AnyTimes()
	m.repo.EXPECT().Delivery().Return(m.deliveries).AnyTimes()
	m.repo.EXPECT().Subscriber().Return(m.subs).AnyTimes()
	m.repo.EXPECT().Authority().Return(m.authority).AnyTimes()
	m.repo.EXPECT().Moment().Return(m.moments).AnyTimes()
	return m
}

func delivered(id string) models.DeliveryResult {
	return models.DeliveryResult{Delivered: true, MessageID: id, Attempts: 1, StatusCode: 200}
}

func failed(err error, attempts int) models.DeliveryResult {
	return models.DeliveryResult{Attempts: attempts, Err: err}
}
