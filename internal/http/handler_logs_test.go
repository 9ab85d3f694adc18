package http

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/deal-service/internal/circuitbreaker"
	"github.com/guttosm/deal-service/internal/domain/dto"
	"github.com/guttosm/deal-service/internal/domain/model"
	"github.com/guttosm/deal-service/internal/mocks"
	"github.com/guttosm/deal-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLogs(t *testing.T) {
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	entries := []model.LogEntry{
		{Level: "warn", Message: "POST /api/deals/batch", RequestID: "r1", Method: http.MethodPost, Path: "/api/deals/batch", StatusCode: 400},
	}

	tests := []struct {
		name           string
		query          string
		setup          func(*mocks.MockLoggingService)
		expectedStatus int
		wantCode       string
		wantTotal      int64
		wantCount      int
	}{
		{
			name:  "defaults",
			query: "",
			setup: func(l *mocks.MockLoggingService) {
				opts := model.LogQueryOptions{Limit: dto.DefaultLogsLimit}
				l.EXPECT().QueryLogs(mock.Anything, opts).Return(entries, nil).Once()
				l.EXPECT().CountLogs(mock.Anything, opts).Return(int64(7), nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantTotal:      7,
			wantCount:      1,
		},
		{
			name:  "filters",
			query: "?request_id=r1&level=warn&method=POST&path=/api/deals/batch&since=2024-05-01T00:00:00Z&limit=10&skip=20",
			setup: func(l *mocks.MockLoggingService) {
				match := mock.MatchedBy(func(o model.LogQueryOptions) bool {
					return o.RequestID == "r1" && o.Level == "warn" && o.Method == http.MethodPost &&
						o.Path == "/api/deals/batch" && o.StartTime != nil && o.StartTime.Equal(since) &&
						o.EndTime == nil && o.Limit == 10 && o.Skip == 20
				})
				l.EXPECT().QueryLogs(mock.Anything, match).Return([]model.LogEntry{}, nil).Once()
				l.EXPECT().CountLogs(mock.Anything, match).Return(int64(20), nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantTotal:      20,
			wantCount:      0,
		},
		{
			name:           "negative skip",
			query:          "?skip=-1",
			expectedStatus: http.StatusBadRequest,
			wantCode:       dto.ErrCodeInvalidRequest,
		},
		{
			name:           "inverted range",
			query:          "?since=2024-05-02T00:00:00Z&until=2024-05-01T00:00:00Z",
			expectedStatus: http.StatusBadRequest,
			wantCode:       dto.ErrCodeInvalidRequest,
		},
		{
			name:           "malformed time",
			query:          "?since=yesterday",
			expectedStatus: http.StatusBadRequest,
			wantCode:       dto.ErrCodeInvalidRequest,
		},
		{
			name:  "circuit open",
			query: "",
			setup: func(l *mocks.MockLoggingService) {
				l.EXPECT().QueryLogs(mock.Anything, mock.Anything).Return(nil, circuitbreaker.ErrCircuitOpen).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			wantCode:       dto.ErrCodeUnavailable,
		},
		{
			name:  "count failure",
			query: "",
			setup: func(l *mocks.MockLoggingService) {
				l.EXPECT().QueryLogs(mock.Anything, mock.Anything).Return(entries, nil).Once()
				l.EXPECT().CountLogs(mock.Anything, mock.Anything).Return(int64(0), errors.New("cursor died")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			wantCode:       dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := mocks.NewMockLoggingService(t)
			if tt.setup != nil {
				tt.setup(logs)
			}
			handler := NewHandler(service.NewDealCalculatorService(), WithLogs(logs))
			router := NewRouter(handler, nil, DefaultRouterConfig())

			w := doRequest(router, http.MethodGet, "/api/logs"+tt.query, "", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error)
				return
			}
			resp := decodeData[dto.LogsResponse](t, w)
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.Equal(t, tt.wantCount, resp.Count)
			assert.Len(t, resp.Items, tt.wantCount)
		})
	}
}

func TestLogs_Disabled(t *testing.T) {
	w := doRequest(setupRouter(), http.MethodGet, "/api/logs", "", map[string]string{"Accept-Language": "nl"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeUnavailable, resp.Error)
	assert.Equal(t, "Opslag van verzoeklogs is niet ingeschakeld", resp.Message)
}

func TestLogs_RequestDeadline(t *testing.T) {
	logs := mocks.NewMockLoggingService(t)
	logs.EXPECT().QueryLogs(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ model.LogQueryOptions) ([]model.LogEntry, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	handler := NewHandler(service.NewDealCalculatorService(), WithLogs(logs))
	router := NewRouter(handler, nil, RouterConfig{RequestTimeout: 20 * time.Millisecond})

	w := doRequest(router, http.MethodGet, "/api/logs", "", nil)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, dto.ErrCodeTimeout, decodeError(t, w).Error)
}

func TestFlushCache(t *testing.T) {
	t.Run("clears the calculator cache", func(t *testing.T) {
		router, calc := setupRouterWithMock(t)
		calc.EXPECT().InvalidateCache().Return().Once()

		w := doRequest(router, http.MethodDelete, "/api/deals/cache", "", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("next request is computed again", func(t *testing.T) {
		calculator := service.NewDealCalculatorService(service.WithCache(100, time.Minute, 4))
		defer calculator.Stop()
		router := NewRouter(NewHandler(calculator), nil, DefaultRouterConfig())

		doRequest(router, http.MethodGet, "/api/deals/26", "", nil)
		w := doRequest(router, http.MethodDelete, "/api/deals/cache", "", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		doRequest(router, http.MethodGet, "/api/deals/26", "", nil)

		m, _ := calculator.CacheMetrics()
		assert.Zero(t, m.Hits)
		assert.Equal(t, int64(1), m.Misses)
		assert.Equal(t, 1, m.Size)
	})
}
