//go:build !integration

package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/deal-service/config"
	"github.com/guttosm/deal-service/internal/circuitbreaker"
	dealhttp "github.com/guttosm/deal-service/internal/http"
	"github.com/guttosm/deal-service/internal/mocks"
	"github.com/guttosm/deal-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Auth: config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"k": true}},
	}
}

func TestInitializeRouter_WithoutDatabase(t *testing.T) {
	calculator := service.NewDealCalculatorService()
	components := InitializeRouter(calculator, nil, testConfig())
	defer components.Stop()

	require.NotNil(t, components.Handler)
	assert.NotNil(t, components.Config.RateLimiter)
	assert.Nil(t, components.Config.AsyncLogger)
	assert.True(t, components.Config.EnableAuth)
	assert.Equal(t, 5*time.Second, components.Config.RequestTimeout)

	router := dealhttp.NewRouter(components.Handler, components.HealthHandler, components.Config)
	req := httptest.NewRequest(http.MethodGet, "/api/deals/history", nil)
	req.Header.Set("X-API-Key", "k")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"`+rateLimiterStatsName+`"`)
	assert.NotContains(t, w.Body.String(), `"`+cacheStatsName+`"`)
	assert.NotContains(t, w.Body.String(), `"`+calculationsStatsName+`"`)
}

func TestInitializeRouter_CacheStats(t *testing.T) {
	calculator := service.NewDealCalculatorService(service.WithCache(10, time.Minute, 2))
	defer calculator.Stop()
	cfg := testConfig()
	cfg.Server.RateLimit = 0

	components := InitializeRouter(calculator, nil, cfg)
	defer components.Stop()
	router := dealhttp.NewRouter(components.Handler, components.HealthHandler, components.Config)

	_, err := calculator.Calculate(26)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var body struct {
		Stats map[string]map[string]interface{} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body.Stats[cacheStatsName]["size"])
	assert.Equal(t, float64(10), body.Stats[cacheStatsName]["capacity"])
	assert.Equal(t, float64(1), body.Stats[cacheStatsName]["misses"])
	assert.NotContains(t, body.Stats, rateLimiterStatsName)
}

func TestInitializeRouter_RateLimitDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = 0

	components := InitializeRouter(service.NewDealCalculatorService(), nil, cfg)
	defer components.Stop()

	assert.Nil(t, components.Config.RateLimiter)
}

func TestInitializeRouter_WithDatabaseComponents(t *testing.T) {
	history := mocks.NewMockHistoryService(t)
	history.EXPECT().Enabled().Return(true).Maybe()
	history.EXPECT().Recent(mock.Anything, 0).Return(nil, nil).Once()
	history.EXPECT().Count(mock.Anything).Return(int64(12), nil).Once()

	logging := mocks.NewMockLoggingService(t)
	logging.EXPECT().CreateLog(mock.Anything, mock.Anything).Return(nil).Maybe()
	logging.EXPECT().CreateLogs(mock.Anything, mock.Anything).Return(nil).Maybe()
	logging.EXPECT().QueryLogs(mock.Anything, mock.Anything).Return(nil, nil).Once()
	logging.EXPECT().CountLogs(mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	calculationsCB := circuitbreaker.New(circuitbreaker.Config{Name: calculationsBreakerName})
	logsCB := circuitbreaker.New(circuitbreaker.Config{Name: logsBreakerName})
	db := &DatabaseComponents{
		History:                    history,
		LoggingService:             logging,
		CalculationsCircuitBreaker: calculationsCB,
		LogsCircuitBreaker:         logsCB,
	}

	cfg := testConfig()
	cfg.Auth.Enabled = false
	components := InitializeRouter(service.NewDealCalculatorService(), db, cfg)
	defer components.Stop()

	assert.NotNil(t, components.Config.AsyncLogger)

	router := dealhttp.NewRouter(components.Handler, components.HealthHandler, components.Config)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), calculationsBreakerName+"_circuit")
	assert.Contains(t, w.Body.String(), logsBreakerName+"_circuit")
	assert.NotContains(t, w.Body.String(), mongoCheckName+"\"")
	assert.Contains(t, w.Body.String(), `"stored":12`)
	assert.Contains(t, w.Body.String(), `"`+requestLogStatsName+`"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/deals/history", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterComponents_StopNil(t *testing.T) {
	var r *RouterComponents
	assert.NotPanics(t, r.Stop)
}
