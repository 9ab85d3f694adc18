package i18n

// Error message keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyServiceUnavailable = "error.service_unavailable"

	// ErrKeyInvalidQuantity is used when the path or body quantity is not an integer.
	ErrKeyInvalidQuantity = "error.validation.quantity"
	// ErrKeyQuantityOutOfRange takes the maximum quantity as its argument.
	ErrKeyQuantityOutOfRange = "error.validation.quantity_range"
	ErrKeyEmptyBatch         = "error.validation.empty_batch"
	// ErrKeyBatchTooLarge takes the batch limit as its argument.
	ErrKeyBatchTooLarge   = "error.validation.batch_too_large"
	ErrKeyInvalidLimit    = "error.validation.limit"
	ErrKeyHistoryDisabled = "error.history_disabled"
	ErrKeyLogsDisabled    = "error.logs_disabled"
	ErrKeyInvalidLogQuery = "error.validation.log_query"
)
