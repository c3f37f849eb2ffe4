package workers

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper drops expired entries and reports how many went.
type Sweeper interface {
	Sweep(ctx context.Context) int
}

// CacheSweeper حذف دوره‌ای صفحات منقضی‌شده از کش درون‌پردازه‌ای
type CacheSweeper struct {
	Target   Sweeper
	Interval time.Duration
	Logger   *zap.Logger
}

func NewCacheSweeper(target Sweeper, interval time.Duration, logger *zap.Logger) *CacheSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheSweeper{
		Target:   target,
		Interval: interval,
		Logger:   logger,
	}
}

// Run blocks until ctx is done.
func (w *CacheSweeper) Run(ctx context.Context) {
	w.Logger.Info("Cache sweeper started", zap.Duration("interval", w.Interval))
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("Cache sweeper stopped")
			return
		case <-ticker.C:
			if n := w.Target.Sweep(ctx); n > 0 {
				w.Logger.Debug("Swept expired pages", zap.Int("count", n))
			}
		}
	}
}
