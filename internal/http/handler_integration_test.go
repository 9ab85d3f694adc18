//go:build integration

package http

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/deal-service/internal/circuitbreaker"
	"github.com/guttosm/deal-service/internal/domain/dto"
	"github.com/guttosm/deal-service/internal/domain/model"
	"github.com/guttosm/deal-service/internal/middleware"
	"github.com/guttosm/deal-service/internal/repository"
	"github.com/guttosm/deal-service/internal/service"
	"github.com/guttosm/deal-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type integrationStack struct {
	router  *gin.Engine
	db      *repository.MongoDB
	logs    service.LoggingService
	breaker *circuitbreaker.CircuitBreaker
}

func setupIntegrationStack(t *testing.T) *integrationStack {
	t.Helper()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close(context.Background())
	})

	cb := circuitbreaker.New(circuitbreaker.Config{Name: "calculations", FailureThreshold: 3, Timeout: time.Second})
	calcRepo := repository.NewCalculationsRepositoryWithCircuitBreaker(repository.NewCalculationsRepository(db), cb)
	logs := service.NewLoggingService(repository.NewLogsRepository(db))
	asyncLogger := middleware.NewAsyncLogger(logs, middleware.AsyncLoggerConfig{BufferSize: 16, NumWorkers: 1})
	t.Cleanup(asyncLogger.Stop)

	calculator := service.NewDealCalculatorService(service.WithCache(100, time.Minute, 4))
	t.Cleanup(calculator.Stop)

	handler := NewHandler(calculator,
		WithHistory(service.NewCalculationHistoryService(calcRepo)),
		WithLogs(logs),
	)
	health := NewHealthHandler()
	health.RegisterChecker("mongodb", HealthCheckFunc(db.HealthCheck))
	health.RegisterCircuitBreaker("calculations", cb)

	cfg := DefaultRouterConfig()
	cfg.AsyncLogger = asyncLogger

	return &integrationStack{
		router:  NewRouter(handler, health, cfg),
		db:      db,
		logs:    logs,
		breaker: cb,
	}
}

func TestIntegration_CalculationsAreRecorded(t *testing.T) {
	stack := setupIntegrationStack(t)

	for _, q := range []int64{1, 26, 1000} {
		w := doRequest(stack.router, http.MethodGet, "/api/deals/"+strconv.FormatInt(q, 10), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := doRequest(stack.router, http.MethodPost, "/api/deals/batch", `{"quantities": [26, 3]}`,
		map[string]string{middleware.RequestIDHeader: "batch-req"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(stack.router, http.MethodGet, "/api/deals/history?limit=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeData[dto.HistoryResponse](t, w)
	assert.Equal(t, 5, all.Count)

	w = doRequest(stack.router, http.MethodGet, "/api/deals/history?quantity=26", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	only26 := decodeData[dto.HistoryResponse](t, w)
	require.Equal(t, 2, only26.Count)
	for _, item := range only26.Items {
		assert.Equal(t, int64(92), item.TotalCost)
		assert.Equal(t, []model.Deal{
			{Power: 9, Exponent: 2, Count: 2, CostPerDeal: 33, Cost: 66},
			{Power: 3, Exponent: 1, Count: 2, CostPerDeal: 10, Cost: 20},
			{Power: 1, Exponent: 0, Count: 2, CostPerDeal: 3, Cost: 6},
		}, item.Deals)
	}
	assert.Equal(t, "batch-req", only26.Items[0].RequestID, "newest first")
}

func TestIntegration_RequestLogsArePersisted(t *testing.T) {
	stack := setupIntegrationStack(t)

	w := doRequest(stack.router, http.MethodGet, "/api/deals/10", "", map[string]string{
		middleware.RequestIDHeader: "log-req",
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool {
		n, err := stack.logs.CountLogs(context.Background(), model.LogQueryOptions{RequestID: "log-req"})
		return err == nil && n == 1
	}, 5*time.Second, 50*time.Millisecond)

	entries, err := stack.logs.QueryLogs(context.Background(), model.LogQueryOptions{RequestID: "log-req"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/api/deals/10", entries[0].Path)
	assert.Equal(t, http.StatusOK, entries[0].StatusCode)
	assert.EqualValues(t, 10, entries[0].Fields["quantity"])
	assert.EqualValues(t, 36, entries[0].Fields["total_cost"])
}

func TestIntegration_LogsEndpoint(t *testing.T) {
	stack := setupIntegrationStack(t)

	for _, q := range []string{"1", "3", "26"} {
		w := doRequest(stack.router, http.MethodGet, "/api/deals/"+q, "", map[string]string{
			middleware.RequestIDHeader: "logs-endpoint",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	var page dto.LogsResponse
	assert.Eventually(t, func() bool {
		w := doRequest(stack.router, http.MethodGet, "/api/logs?request_id=logs-endpoint&limit=2", "", nil)
		if w.Code != http.StatusOK {
			return false
		}
		page = decodeData[dto.LogsResponse](t, w)
		return page.Total == 3
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Items, 2)
	for _, e := range page.Items {
		assert.Equal(t, "logs-endpoint", e.RequestID)
		assert.Equal(t, http.MethodGet, e.Method)
	}
}

func TestIntegration_Readiness(t *testing.T) {
	stack := setupIntegrationStack(t)

	w := doRequest(stack.router, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[readiness](t, w)
	assert.Equal(t, "ok", resp.Checks["mongodb"])
	assert.Equal(t, "closed", resp.Checks["calculations_circuit"])

	require.NoError(t, stack.db.Close(context.Background()))

	w = doRequest(stack.router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
