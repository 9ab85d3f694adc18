// Package dto defines the HTTP request and response bodies.
package dto

import (
	"time"

	"github.com/guttosm/deal-service/internal/domain/model"
)

const (
	// DefaultLogsLimit is the page size of GET /api/logs when no limit is given.
	DefaultLogsLimit = 50
	// MaxLogsLimit caps the page size of GET /api/logs.
	MaxLogsLimit = 500
)

// CalculateCostRequest is the body of POST /api/deals/cost.
//
// Quantity is a pointer so that an explicit 0 is accepted while a missing field is not.
//
// @Description Request to calculate the minimum cost for one quantity
// @Example {"quantity": 26}
type CalculateCostRequest struct {
	Quantity *int64 `json:"quantity" binding:"required" example:"26" minimum:"0"`
} // @name CalculateCostRequest

// BatchCostRequest is the body of POST /api/deals/batch.
//
// @Description Request to calculate the minimum cost for several quantities
// @Example {"quantities": [1, 3, 26]}
type BatchCostRequest struct {
	Quantities []int64 `json:"quantities" binding:"required" example:"1,3,26"`
} // @name BatchCostRequest

// HistoryQuery holds the query string of GET /api/deals/history.
type HistoryQuery struct {
	Limit    int    `form:"limit" example:"20"`
	Quantity *int64 `form:"quantity" example:"26"`
}

// LogsQuery holds the query string of GET /api/logs. Since and Until are RFC 3339.
type LogsQuery struct {
	RequestID string     `form:"request_id"`
	Level     string     `form:"level" example:"warn"`
	Method    string     `form:"method" example:"POST"`
	Path      string     `form:"path" example:"/api/deals/batch"`
	Since     *time.Time `form:"since"`
	Until     *time.Time `form:"until"`
	Limit     int        `form:"limit" example:"50"`
	Skip      int        `form:"skip" example:"0"`
}

// ValidationError is a field level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingQuantity is returned when quantity is absent.
	ErrMissingQuantity = &ValidationError{Field: "quantity", Message: "is required"}
	// ErrNegativeQuantity is returned for quantity < 0.
	ErrNegativeQuantity = &ValidationError{Field: "quantity", Message: "must not be negative"}
	// ErrEmptyQuantities is returned when quantities has no elements.
	ErrEmptyQuantities = &ValidationError{Field: "quantities", Message: "must contain at least one quantity"}
	// ErrInvalidLimit is returned for a negative history limit.
	ErrInvalidLimit = &ValidationError{Field: "limit", Message: "must not be negative"}
	// ErrInvalidSkip is returned for a negative skip.
	ErrInvalidSkip = &ValidationError{Field: "skip", Message: "must not be negative"}
	// ErrInvalidTimeRange is returned when since is after until.
	ErrInvalidTimeRange = &ValidationError{Field: "since", Message: "must not be after until"}
)

// Validate checks the fields gin's binding cannot.
func (r *CalculateCostRequest) Validate() error {
	if r.Quantity == nil {
		return ErrMissingQuantity
	}
	if *r.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Validate rejects an empty batch and any negative quantity.
func (r *BatchCostRequest) Validate() error {
	if len(r.Quantities) == 0 {
		return ErrEmptyQuantities
	}
	for _, q := range r.Quantities {
		if q < 0 {
			return &ValidationError{Field: "quantities", Message: "must not contain negative values"}
		}
	}
	return nil
}

// Validate rejects negative limits and quantities.
func (q *HistoryQuery) Validate() error {
	if q.Limit < 0 {
		return ErrInvalidLimit
	}
	if q.Quantity != nil && *q.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Validate rejects negative paging and an inverted time range.
func (q *LogsQuery) Validate() error {
	if q.Limit < 0 {
		return ErrInvalidLimit
	}
	if q.Skip < 0 {
		return ErrInvalidSkip
	}
	if q.Since != nil && q.Until != nil && q.Since.After(*q.Until) {
		return ErrInvalidTimeRange
	}
	return nil
}

// Options converts q to repository query options, applying the default and
// maximum page size.
func (q *LogsQuery) Options() model.LogQueryOptions {
	limit := q.Limit
	switch {
	case limit <= 0:
		limit = DefaultLogsLimit
	case limit > MaxLogsLimit:
		limit = MaxLogsLimit
	}
	return model.LogQueryOptions{
		RequestID: q.RequestID,
		Level:     q.Level,
		Method:    q.Method,
		Path:      q.Path,
		StartTime: q.Since,
		EndTime:   q.Until,
		Limit:     limit,
		Skip:      q.Skip,
	}
}
