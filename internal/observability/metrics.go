// Package observability holds the Prometheus collectors exported on /metrics.
package observability

import (
	"context"
	"time"

	cachePort "yatube/internal/ports/cache"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageCacheLookups counts page cache reads by result (hit, miss, error).
	PageCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_page_cache_lookups_total",
		Help: "Page cache reads by result",
	}, []string{"result"})

	// PageCacheErrors counts failed cache writes and clears.
	PageCacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_page_cache_errors_total",
		Help: "Page cache errors by operation",
	}, []string{"operation"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "yatube_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// InstrumentedCache counts lookups on the wrapped cache.
type InstrumentedCache struct {
	next cachePort.Cache
}

func NewInstrumentedCache(next cachePort.Cache) *InstrumentedCache {
	return &InstrumentedCache{next: next}
}

func (c *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found, err := c.next.Get(ctx, key)
	switch {
	case err != nil:
		PageCacheLookups.WithLabelValues("error").Inc()
	case found:
		PageCacheLookups.WithLabelValues("hit").Inc()
	default:
		PageCacheLookups.WithLabelValues("miss").Inc()
	}
	return value, found, err
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.next.Set(ctx, key, value, ttl)
	if err != nil {
		PageCacheErrors.WithLabelValues("set").Inc()
	}
	return err
}

func (c *InstrumentedCache) Clear(ctx context.Context) error {
	err := c.next.Clear(ctx)
	if err != nil {
		PageCacheErrors.WithLabelValues("clear").Inc()
	}
	return err
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
