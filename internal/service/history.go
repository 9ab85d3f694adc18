package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/deal-service/internal/domain/model"
	"github.com/guttosm/deal-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// DefaultHistoryLimit is the page size used when no limit is requested.
const DefaultHistoryLimit = 20

// ErrHistoryUnavailable is returned by the no-op history when storage is disabled.
var ErrHistoryUnavailable = errors.New("calculation history is not enabled")

// HistoryService records served calculations and lists them back.
type HistoryService interface {
	// Record stores results. Storage failures are logged and not returned.
	Record(ctx context.Context, requestID string, results []model.DealResult)
	Recent(ctx context.Context, limit int) ([]model.Calculation, error)
	ByQuantity(ctx context.Context, quantity int64, limit int) ([]model.Calculation, error)
	Count(ctx context.Context) (int64, error)
	Enabled() bool
}

// CalculationHistoryService implements HistoryService on a calculations repository.
type CalculationHistoryService struct {
	repo repository.CalculationsRepositoryInterface
	now  func() time.Time
}

// NewCalculationHistoryService creates a HistoryService backed by repo.
func NewCalculationHistoryService(repo repository.CalculationsRepositoryInterface) *CalculationHistoryService {
	return &CalculationHistoryService{repo: repo, now: time.Now}
}

// Record stores all results of one request in a single write, so a failed
// write leaves none of them behind.
func (s *CalculationHistoryService) Record(ctx context.Context, requestID string, results []model.DealResult) {
	if len(results) == 0 {
		return
	}

	createdAt := s.now().UTC()
	docs := make([]*repository.CalculationDocument, len(results))
	for i, r := range results {
		docs[i] = &repository.CalculationDocument{
			Quantity:  r.Quantity,
			TotalCost: r.TotalCost,
			DealCount: r.DealCount(),
			Deals:     r.Deals,
			RequestID: requestID,
			CreatedAt: createdAt,
		}
	}

	if err := s.repo.CreateMany(ctx, docs); err != nil {
		log.Warn().
			Err(err).
			Str("request_id", requestID).
			Int("results", len(results)).
			Msg("Failed to record calculations")
	}
}

// Recent returns the latest calculations, newest first.
func (s *CalculationHistoryService) Recent(ctx context.Context, limit int) ([]model.Calculation, error) {
	docs, err := s.repo.Recent(ctx, normalizeHistoryLimit(limit))
	if err != nil {
		return nil, err
	}
	return toCalculations(docs), nil
}

// ByQuantity returns the latest calculations for quantity.
func (s *CalculationHistoryService) ByQuantity(ctx context.Context, quantity int64, limit int) ([]model.Calculation, error) {
	docs, err := s.repo.FindByQuantity(ctx, quantity, normalizeHistoryLimit(limit))
	if err != nil {
		return nil, err
	}
	return toCalculations(docs), nil
}

// Count returns the number of stored calculations.
func (s *CalculationHistoryService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Enabled reports true.
func (s *CalculationHistoryService) Enabled() bool { return true }

func normalizeHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > repository.MaxHistoryLimit {
		return repository.MaxHistoryLimit
	}
	return limit
}

func toCalculations(docs []repository.CalculationDocument) []model.Calculation {
	out := make([]model.Calculation, len(docs))
	for i, d := range docs {
		deals := d.Deals
		if deals == nil {
			deals = []model.Deal{}
		}
		out[i] = model.Calculation{
			ID:        d.ID.Hex(),
			Quantity:  d.Quantity,
			TotalCost: d.TotalCost,
			DealCount: d.DealCount,
			Deals:     deals,
			RequestID: d.RequestID,
			CreatedAt: d.CreatedAt,
		}
	}
	return out
}

// NoopHistoryService is used when MongoDB is disabled.
type NoopHistoryService struct{}

// Record does nothing.
func (NoopHistoryService) Record(context.Context, string, []model.DealResult) {}

// Recent returns ErrHistoryUnavailable.
func (NoopHistoryService) Recent(context.Context, int) ([]model.Calculation, error) {
	return nil, ErrHistoryUnavailable
}

// ByQuantity returns ErrHistoryUnavailable.
func (NoopHistoryService) ByQuantity(context.Context, int64, int) ([]model.Calculation, error) {
	return nil, ErrHistoryUnavailable
}

// Count returns ErrHistoryUnavailable.
func (NoopHistoryService) Count(context.Context) (int64, error) {
	return 0, ErrHistoryUnavailable
}

// Enabled reports false.
func (NoopHistoryService) Enabled() bool { return false }
