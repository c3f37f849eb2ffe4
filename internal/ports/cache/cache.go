package cache

import (
	"context"
	"time"
)

// Cache حافظه نهان صفحات رندرشده؛ نوشتن پست آن را باطل نمی‌کند
type Cache interface {
	// Get reports found=false on a miss.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Clear drops every entry this cache owns.
	Clear(ctx context.Context) error
}
