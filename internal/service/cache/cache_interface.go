// Package cache defines the result cache contract used by the deal calculator.
package cache

import "github.com/guttosm/deal-service/internal/domain/model"

// Cache stores calculation results keyed by quantity.
type Cache interface {
	Get(quantity int64) (model.DealResult, bool)
	Set(quantity int64, value model.DealResult)
	Invalidate(quantity int64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRatio returns hits / (hits + misses), or 0 when nothing was looked up.
func (m Metrics) HitRatio() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
