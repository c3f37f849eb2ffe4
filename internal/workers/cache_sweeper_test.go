package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingSweeper struct{ calls atomic.Int32 }

func (s *countingSweeper) Sweep(context.Context) int {
	s.calls.Add(1)
	return 1
}

func TestCacheSweeper_RunsUntilCancelled(t *testing.T) {
	target := &countingSweeper{}
	w := NewCacheSweeper(target, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return target.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestNewCacheSweeper_DefaultInterval(t *testing.T) {
	w := NewCacheSweeper(&countingSweeper{}, 0, zap.NewNop())
	assert.Equal(t, time.Minute, w.Interval)
}
