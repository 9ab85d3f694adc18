package repository

import "context"

// CalculationsRepositoryInterface is the calculation history store.
type CalculationsRepositoryInterface interface {
	CreateMany(ctx context.Context, docs []*CalculationDocument) error
	Recent(ctx context.Context, limit int) ([]CalculationDocument, error)
	FindByQuantity(ctx context.Context, quantity int64, limit int) ([]CalculationDocument, error)
	Count(ctx context.Context) (int64, error)
}

// LogsRepositoryInterface is the request log store.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ CalculationsRepositoryInterface = (*CalculationsRepository)(nil)
	_ CalculationsRepositoryInterface = (*CalculationsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface         = (*LogsRepository)(nil)
	_ LogsRepositoryInterface         = (*LogsRepositoryWithCircuitBreaker)(nil)
)
