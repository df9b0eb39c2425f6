package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSweeper struct {
	mu    sync.Mutex
	calls []time.Time
}

func (f *fakeSweeper) SweepIdle(olderThan time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, olderThan)
	return 2
}

func (f *fakeSweeper) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSweepDialogsUsesTTL(t *testing.T) {
	sweeper := &fakeSweeper{}
	s := NewScheduler(sweeper, 30*time.Minute, time.Minute, zap.NewNop())
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	assert.Equal(t, 2, s.sweepDialogs())
	require.Len(t, sweeper.calls, 1)
	assert.Equal(t, now.Add(-30*time.Minute), sweeper.calls[0])
}

func TestRunStopsOnContextCancel(t *testing.T) {
	sweeper := &fakeSweeper{}
	s := NewScheduler(sweeper, time.Minute, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return sweeper.count() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
