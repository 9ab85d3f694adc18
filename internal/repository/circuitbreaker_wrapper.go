package repository

import (
	"context"
	"errors"

	"github.com/guttosm/deal-service/internal/circuitbreaker"
)

// CalculationsRepositoryWithCircuitBreaker guards a calculations store with a breaker.
// History writes are best effort: an open circuit drops them.
type CalculationsRepositoryWithCircuitBreaker struct {
	repo           CalculationsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCalculationsRepositoryWithCircuitBreaker wraps repo with cb.
func NewCalculationsRepositoryWithCircuitBreaker(repo CalculationsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CalculationsRepositoryWithCircuitBreaker {
	return &CalculationsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// CreateMany stores docs in one call unless the circuit is open.
func (r *CalculationsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, docs []*CalculationDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, docs)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Recent returns ErrCircuitOpen while the circuit is open.
func (r *CalculationsRepositoryWithCircuitBreaker) Recent(ctx context.Context, limit int) ([]CalculationDocument, error) {
	var result []CalculationDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Recent(ctx, limit)
		return cbErr
	})
	return result, err
}

// FindByQuantity returns ErrCircuitOpen while the circuit is open.
func (r *CalculationsRepositoryWithCircuitBreaker) FindByQuantity(ctx context.Context, quantity int64, limit int) ([]CalculationDocument, error) {
	var result []CalculationDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByQuantity(ctx, quantity, limit)
		return cbErr
	})
	return result, err
}

// Count returns ErrCircuitOpen while the circuit is open.
func (r *CalculationsRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the breaker for health reporting.
func (r *CalculationsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker guards a log store with a breaker.
// Log writes are best effort: an open circuit drops them.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores entry unless the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores entries unless the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query returns ErrCircuitOpen while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns ErrCircuitOpen while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the breaker for health reporting.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
