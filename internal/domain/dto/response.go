package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/deal-service/internal/domain/model"
)

const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeInternal       = "internal_error"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeForbidden      = "forbidden"
	ErrCodeNotFound       = "not_found"
	ErrCodeRateLimit      = "rate_limit_exceeded"
	ErrCodeTimeout        = "timeout"
	ErrCodeUnavailable    = "service_unavailable"
	ErrCodeTooLarge       = "payload_too_large"
)

// SuccessResponse wraps every successful API response.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the body of every error response.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"quantity: must not be negative"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// BatchCostResponse is the data of POST /api/deals/batch.
// @Description Results in the same order as the requested quantities
type BatchCostResponse struct {
	Count     int                `json:"count" example:"3"`
	TotalCost int64              `json:"total_cost" example:"105"`
	Results   []model.DealResult `json:"results"`
} // @name BatchCostResponse

// NewBatchCostResponse sums the results into a response.
func NewBatchCostResponse(results []model.DealResult) BatchCostResponse {
	var total int64
	for _, r := range results {
		total += r.TotalCost
	}
	return BatchCostResponse{Count: len(results), TotalCost: total, Results: results}
}

// HistoryResponse is the data of GET /api/deals/history.
// @Description Recent calculations, newest first
type HistoryResponse struct {
	Count int                 `json:"count" example:"1"`
	Items []model.Calculation `json:"items"`
} // @name HistoryResponse

// LogsResponse is the data of GET /api/logs. Total counts every matching
// entry, Count only those on this page.
// @Description Stored request log entries, newest first
type LogsResponse struct {
	Total int64            `json:"total" example:"120"`
	Count int              `json:"count" example:"50"`
	Items []model.LogEntry `json:"items"`
} // @name LogsResponse

// NewError creates an ErrorResponse stamped with the current time.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID returns a copy carrying requestID.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail returns a copy with one more detail entry.
func (e ErrorResponse) WithDetail(key, value string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrCodeFromStatus maps an HTTP status to an error code.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusRequestEntityTooLarge:
		return ErrCodeTooLarge
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}
