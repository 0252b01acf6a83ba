package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/scheduler"
)

func noop(context.Context) error { return nil }

type tickCounter struct {
	n atomic.Int32
}

func (c *tickCounter) task(err error) func(context.Context) error {
	return func(context.Context) error {
		c.n.Add(1)
		return err
	}
}

func TestScheduler_Lifecycle(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), "moments", time.Hour, noop)
	assert.False(t, s.IsRunning())
	assert.ErrorIs(t, s.Stop(), scheduler.ErrSchedulerNotRunning)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	assert.ErrorIs(t, s.Start(context.Background()), scheduler.ErrSchedulerAlreadyRunning)

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
	assert.ErrorIs(t, s.Stop(), scheduler.ErrSchedulerNotRunning)
}

func TestScheduler_TaskExecution(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		interval time.Duration
		window   time.Duration
		minCalls int32
		maxCalls int32
	}{
		{
			name:     "ticks repeatedly",
			interval: 50 * time.Millisecond,
			window:   250 * time.Millisecond,
			minCalls: 4,
			maxCalls: 7,
		},
		{
			name:     "keeps ticking after task errors",
			err:      errors.New("claim failed"),
			interval: 50 * time.Millisecond,
			window:   150 * time.Millisecond,
			minCalls: 2,
			maxCalls: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var counter tickCounter
			s := scheduler.NewScheduler(zap.NewNop(), "moments", tt.interval, counter.task(tt.err))

			require.NoError(t, s.Start(context.Background()))
			time.Sleep(tt.window)
			require.NoError(t, s.Stop())

			calls := counter.n.Load()
			assert.GreaterOrEqual(t, calls, tt.minCalls)
			assert.LessOrEqual(t, calls, tt.maxCalls)
		})
	}
}

func TestScheduler_RecoversTaskPanic(t *testing.T) {
	var calls atomic.Int32
	s := scheduler.NewScheduler(zap.NewNop(), "moments", 30*time.Millisecond, func(context.Context) error {
		if calls.Add(1) == 1 {
			panic("bad moment row")
		}
		return nil
	})

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(100 * time.Millisecond)

	assert.True(t, s.IsRunning())
	require.NoError(t, s.Stop())
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestScheduler_ContextCancellation(t *testing.T) {
	var counter tickCounter
	ctx, cancel := context.WithCancel(context.Background())
	s := scheduler.NewScheduler(zap.NewNop(), "moments", 50*time.Millisecond, counter.task(nil))

	require.NoError(t, s.Start(ctx))
	time.Sleep(120 * time.Millisecond)

	before := counter.n.Load()
	assert.GreaterOrEqual(t, before, int32(2))

	cancel()
	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)

	assert.LessOrEqual(t, counter.n.Load()-before, int32(1))

	// A cancelled scheduler can be started again.
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop())
}

func TestScheduler_ConcurrentStart(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), "moments", 50*time.Millisecond, noop)

	var (
		wg      sync.WaitGroup
		started atomic.Int32
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Start(context.Background())
			if err == nil {
				started.Add(1)
				return
			}
			assert.ErrorIs(t, err, scheduler.ErrSchedulerAlreadyRunning)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), started.Load())
	assert.True(t, s.IsRunning())
	require.NoError(t, s.Stop())
}

func TestScheduler_RunsImmediatelyOnEachStart(t *testing.T) {
	var counter tickCounter
	s := scheduler.NewScheduler(zap.NewNop(), "moments", time.Hour, counter.task(nil))

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop())
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop())

	assert.Equal(t, int32(2), counter.n.Load())
}

func TestScheduler_TaskContextHasDeadline(t *testing.T) {
	deadlines := make(chan bool, 1)
	s := scheduler.NewScheduler(zap.NewNop(), "moments", 50*time.Millisecond, func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		select {
		case deadlines <- ok:
		default:
		}
		return nil
	})

	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop() }()

	select {
	case ok := <-deadlines:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("task was not executed")
	}
}
