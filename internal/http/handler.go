package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/deal-service/internal/circuitbreaker"
	"github.com/guttosm/deal-service/internal/domain/dto"
	"github.com/guttosm/deal-service/internal/domain/model"
	"github.com/guttosm/deal-service/internal/i18n"
	"github.com/guttosm/deal-service/internal/middleware"
	"github.com/guttosm/deal-service/internal/service"
	"github.com/guttosm/deal-service/internal/solver"
)

// DefaultHistoryTimeout bounds each history read or write made by a request.
const DefaultHistoryTimeout = 2 * time.Second

// Handler provides HTTP handlers for the deal routes.
type Handler struct {
	calculator     service.DealCalculator
	history        service.HistoryService
	logs           service.LoggingService
	historyTimeout time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHistory records served calculations and enables GET /api/deals/history.
func WithHistory(history service.HistoryService) HandlerOption {
	return func(h *Handler) {
		if history != nil {
			h.history = history
		}
	}
}

// WithLogs enables GET /api/logs on the given request log store.
func WithLogs(logs service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.logs = logs
	}
}

// WithHistoryTimeout overrides DefaultHistoryTimeout.
func WithHistoryTimeout(timeout time.Duration) HandlerOption {
	return func(h *Handler) {
		if timeout > 0 {
			h.historyTimeout = timeout
		}
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.DealCalculator, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator:     calculator,
		history:        service.NoopHistoryService{},
		historyTimeout: DefaultHistoryTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetDeal handles GET /api/deals/:quantity.
//
// @Summary      Cost for one quantity
// @Description  Returns the minimum total cost for buying exactly quantity units with power-of-three deals, and the deals used.
// @Tags         Deals
// @Produce      json
// @Param        quantity path int true "Quantity" minimum(0)
// @Success      200 {object} dto.SuccessResponse{data=model.DealResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid or out of range quantity"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/deals/{quantity} [get]
func (h *Handler) GetDeal(c *gin.Context) {
	builder := NewResponseBuilder(c)

	quantity, err := strconv.ParseInt(c.Param("quantity"), 10, 64)
	if err != nil || quantity < 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuantity, err)
		return
	}

	h.calculateOne(c, builder, quantity)
}

// CalculateCost handles POST /api/deals/cost.
//
// @Summary      Cost for one quantity
// @Description  Same as GET /api/deals/{quantity} with the quantity in the body.
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateCostRequest true "Quantity"
// @Success      200 {object} dto.SuccessResponse{data=model.DealResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid body or quantity"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/deals/cost [post]
func (h *Handler) CalculateCost(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.CalculateCostRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := Validate(req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuantity, err)
		return
	}

	h.calculateOne(c, builder, *req.Quantity)
}

// CalculateBatch handles POST /api/deals/batch.
//
// @Summary      Costs for several quantities
// @Description  Returns one result per quantity, in request order, plus their sum. The batch is rejected as a whole if any quantity is invalid.
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        request body dto.BatchCostRequest true "Quantities"
// @Success      200 {object} dto.SuccessResponse{data=dto.BatchCostResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid body, empty batch or quantity out of range"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      413 {object} dto.ErrorResponse "Batch larger than the configured limit"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/deals/batch [post]
func (h *Handler) CalculateBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.BatchCostRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := Validate(req); err != nil {
		if errors.Is(err, dto.ErrEmptyQuantities) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyBatch, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuantity, err)
		}
		return
	}

	middleware.AddAuditField(c, "batch_size", len(req.Quantities))

	results, err := h.calculator.CalculateBatch(req.Quantities)
	if err != nil {
		h.calculationError(builder, err)
		return
	}

	h.record(c, results)
	builder.SuccessOK(dto.NewBatchCostResponse(results))
}

// History handles GET /api/deals/history.
//
// @Summary      Recent calculations
// @Description  Lists persisted calculations, newest first. Requires MongoDB to be enabled.
// @Tags         Deals
// @Produce      json
// @Param        limit query int false "Maximum number of items (default 20, max 100)"
// @Param        quantity query int false "Only calculations of this quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.HistoryResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "History disabled or storage unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request deadline passed during the read"
// @Security     ApiKeyAuth
// @Router       /api/deals/history [get]
func (h *Handler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if !h.history.Enabled() {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyHistoryDisabled, nil)
		return
	}

	query, err := BindQuery[dto.HistoryQuery](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidLimit, err)
		return
	}
	if err := Validate(query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidLimit, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.historyTimeout)
	defer cancel()

	var items []model.Calculation
	if query.Quantity != nil {
		items, err = h.history.ByQuantity(ctx, *query.Quantity, query.Limit)
	} else {
		items, err = h.history.Recent(ctx, query.Limit)
	}

	if errors.Is(err, service.ErrHistoryUnavailable) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyHistoryDisabled, err)
		return
	}
	if err != nil {
		storageError(c, builder, err)
		return
	}

	builder.SuccessOK(dto.HistoryResponse{Count: len(items), Items: items})
}

// Logs handles GET /api/logs.
//
// @Summary      Stored request logs
// @Description  Lists persisted request log entries, newest first, with the total number of matches. Requires MongoDB to be enabled.
// @Tags         Logs
// @Produce      json
// @Param        request_id query string false "Only entries of this request"
// @Param        level query string false "Only entries of this level (info, warn, error)"
// @Param        method query string false "Only entries of this HTTP method"
// @Param        path query string false "Only entries of this path"
// @Param        since query string false "Earliest timestamp, RFC 3339"
// @Param        until query string false "Latest timestamp, RFC 3339"
// @Param        limit query int false "Maximum number of items (default 50, max 500)"
// @Param        skip query int false "Number of matching items to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.LogsResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Log storage disabled or unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request deadline passed during the read"
// @Security     ApiKeyAuth
// @Router       /api/logs [get]
func (h *Handler) Logs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.logs == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyLogsDisabled, nil)
		return
	}

	query, err := BindQuery[dto.LogsQuery](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidLogQuery, err)
		return
	}
	if err := Validate(query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidLogQuery, err)
		return
	}
	opts := query.Options()

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.historyTimeout)
	defer cancel()

	items, err := h.logs.QueryLogs(ctx, opts)
	if err != nil {
		storageError(c, builder, err)
		return
	}
	total, err := h.logs.CountLogs(ctx, opts)
	if err != nil {
		storageError(c, builder, err)
		return
	}

	builder.SuccessOK(dto.LogsResponse{Total: total, Count: len(items), Items: items})
}

// FlushCache handles DELETE /api/deals/cache.
//
// @Summary      Clear the result cache
// @Description  Drops every cached calculation. Later requests are computed again.
// @Tags         Deals
// @Success      204 "Cache cleared"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/deals/cache [delete]
func (h *Handler) FlushCache(c *gin.Context) {
	h.calculator.InvalidateCache()
	c.Status(http.StatusNoContent)
}

// storageError maps a failed MongoDB read. The request deadline yields 504;
// an open breaker or the per read timeout yields 503.
func storageError(c *gin.Context, builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(c.Request.Context().Err(), context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func (h *Handler) calculateOne(c *gin.Context, builder *ResponseBuilder, quantity int64) {
	middleware.AddAuditField(c, "quantity", quantity)

	result, err := h.calculator.Calculate(quantity)
	if err != nil {
		h.calculationError(builder, err)
		return
	}

	middleware.AddAuditField(c, "total_cost", result.TotalCost)
	h.record(c, []model.DealResult{result})
	builder.SuccessOK(result)
}

func (h *Handler) calculationError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrQuantityOutOfRange):
		builder.Errorf(http.StatusBadRequest, err, i18n.ErrKeyQuantityOutOfRange, solver.MaxQuantity)
	case errors.Is(err, service.ErrEmptyBatch):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyBatch, err)
	case errors.Is(err, service.ErrBatchTooLarge):
		builder.Errorf(http.StatusRequestEntityTooLarge, err, i18n.ErrKeyBatchTooLarge, h.calculator.BatchLimit())
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// record stores results in the history. Failures are logged by the history service.
func (h *Handler) record(c *gin.Context, results []model.DealResult) {
	if !h.history.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.historyTimeout)
	defer cancel()
	h.history.Record(ctx, middleware.GetRequestID(c), results)
}
