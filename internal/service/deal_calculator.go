package service

import (
	"errors"
	"time"

	"github.com/guttosm/deal-service/internal/domain/model"
	"github.com/guttosm/deal-service/internal/metrics"
	"github.com/guttosm/deal-service/internal/service/cache"
	"github.com/guttosm/deal-service/internal/solver"
)

const (
	// DefaultBatchLimit is the largest batch accepted when no limit is configured.
	DefaultBatchLimit = 1000

	modeSingle = "single"
	modeBatch  = "batch"
)

var (
	// ErrQuantityOutOfRange is returned for quantities outside [0, solver.MaxQuantity].
	ErrQuantityOutOfRange = errors.New("quantity out of range")
	// ErrEmptyBatch is returned when a batch has no quantities.
	ErrEmptyBatch = errors.New("batch is empty")
	// ErrBatchTooLarge is returned when a batch exceeds the configured limit.
	ErrBatchTooLarge = errors.New("batch too large")
)

// DealCalculator defines the cost calculation operations.
type DealCalculator interface {
	Calculate(quantity int64) (model.DealResult, error)
	// CalculateBatch returns one result per quantity, in input order.
	CalculateBatch(quantities []int64) ([]model.DealResult, error)
	InvalidateCache()
	BatchLimit() int
}

// Option configures a DealCalculatorService.
type Option func(*DealCalculatorService)

// DealCalculatorService implements DealCalculator on top of the greedy solver,
// optionally caching results per quantity.
type DealCalculatorService struct {
	cache      cache.Cache
	batchLimit int
}

// NewDealCalculatorService creates a new DealCalculatorService with the given options.
func NewDealCalculatorService(opts ...Option) *DealCalculatorService {
	s := &DealCalculatorService{
		batchLimit: DefaultBatchLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables a sharded result cache with the given capacity, TTL and shard count.
func WithCache(capacity int, ttl time.Duration, shards int) Option {
	return func(s *DealCalculatorService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, shards)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *DealCalculatorService) {
		s.cache = c
	}
}

// WithBatchLimit caps the number of quantities per batch.
func WithBatchLimit(limit int) Option {
	return func(s *DealCalculatorService) {
		if limit > 0 {
			s.batchLimit = limit
		}
	}
}

// ValidateQuantity reports whether q can be calculated without overflow.
func ValidateQuantity(q int64) error {
	if q < 0 || q > solver.MaxQuantity {
		return ErrQuantityOutOfRange
	}
	return nil
}

// Calculate returns the minimum cost and deal breakdown for quantity.
func (s *DealCalculatorService) Calculate(quantity int64) (model.DealResult, error) {
	start := time.Now()
	if err := ValidateQuantity(quantity); err != nil {
		metrics.RecordCostCalculation(modeSingle, time.Since(start), "validation_error")
		return model.DealResult{}, err
	}

	result := s.calculate(quantity)
	metrics.RecordCostCalculation(modeSingle, time.Since(start), "success")
	return result, nil
}

// CalculateBatch validates every quantity before computing any of them.
func (s *DealCalculatorService) CalculateBatch(quantities []int64) ([]model.DealResult, error) {
	start := time.Now()
	if err := s.validateBatch(quantities); err != nil {
		metrics.RecordCostCalculation(modeBatch, time.Since(start), "validation_error")
		return nil, err
	}

	results := make([]model.DealResult, len(quantities))
	for i, q := range quantities {
		results[i] = s.calculate(q)
	}

	metrics.RecordBatchSize(len(quantities))
	metrics.RecordCostCalculation(modeBatch, time.Since(start), "success")
	return results, nil
}

// BatchLimit returns the configured maximum batch size.
func (s *DealCalculatorService) BatchLimit() int {
	return s.batchLimit
}

// InvalidateCache clears the result cache.
func (s *DealCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// CacheMetrics returns cache metrics when the configured cache reports them.
func (s *DealCalculatorService) CacheMetrics() (cache.Metrics, bool) {
	if c, ok := s.cache.(cache.CacheWithMetrics); ok {
		m := c.Metrics()
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
		return m, true
	}
	return cache.Metrics{}, false
}

// Stop releases cache resources.
func (s *DealCalculatorService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func (s *DealCalculatorService) validateBatch(quantities []int64) error {
	if len(quantities) == 0 {
		return ErrEmptyBatch
	}
	if len(quantities) > s.batchLimit {
		return ErrBatchTooLarge
	}
	for _, q := range quantities {
		if err := ValidateQuantity(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *DealCalculatorService) calculate(quantity int64) model.DealResult {
	if s.cache != nil {
		if result, ok := s.cache.Get(quantity); ok {
			return result
		}
	}

	result := solver.Result(quantity)

	if s.cache != nil {
		s.cache.Set(quantity, result)
	}
	return result
}
