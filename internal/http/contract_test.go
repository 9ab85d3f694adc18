//go:build contract

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guttosm/deal-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPI_ContractCompliance checks the wire shape of every documented response.
func TestAPI_ContractCompliance(t *testing.T) {
	router := NewRouter(NewHandler(service.NewDealCalculatorService()), NewHealthHandler(), DefaultRouterConfig())

	successEnvelope := func(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
		resp := decodeJSON[map[string]interface{}](t, w)
		assert.Contains(t, resp, "data", "Response must include data")
		assert.NotEmpty(t, resp["request_id"], "Response must include request_id")
		assert.NotEmpty(t, resp["timestamp"], "Response must include timestamp")
		data, ok := resp["data"].(map[string]interface{})
		require.True(t, ok, "data must be an object")
		return data
	}

	dealResult := func(t *testing.T, result map[string]interface{}) {
		for _, field := range []string{"quantity", "total_cost", "deals"} {
			assert.Contains(t, result, field)
		}
		deals, ok := result["deals"].([]interface{})
		require.True(t, ok, "deals must be an array")
		for _, d := range deals {
			deal, ok := d.(map[string]interface{})
			require.True(t, ok)
			for _, field := range []string{"power", "exponent", "count", "cost_per_deal", "cost"} {
				assert.Contains(t, deal, field)
			}
		}
	}

	errorEnvelope := func(code string) func(*testing.T, *httptest.ResponseRecorder) {
		return func(t *testing.T, w *httptest.ResponseRecorder) {
			resp := decodeJSON[map[string]interface{}](t, w)
			assert.Equal(t, code, resp["error"])
			assert.NotEmpty(t, resp["message"])
			assert.NotEmpty(t, resp["request_id"])
			assert.NotEmpty(t, resp["timestamp"])
			assert.NotContains(t, resp, "data")
		}
	}

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "GET /api/deals/{quantity} - Success 200",
			method:         http.MethodGet,
			path:           "/api/deals/26",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := successEnvelope(t, w)
				dealResult(t, data)
				assert.Equal(t, float64(92), data["total_cost"])
			},
		},
		{
			name:           "GET /api/deals/0 - empty deals is an array",
			method:         http.MethodGet,
			path:           "/api/deals/0",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := successEnvelope(t, w)
				assert.Equal(t, []interface{}{}, data["deals"])
			},
		},
		{
			name:           "POST /api/deals/cost - Success 200",
			method:         http.MethodPost,
			path:           "/api/deals/cost",
			body:           `{"quantity": 10}`,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				dealResult(t, successEnvelope(t, w))
			},
		},
		{
			name:           "POST /api/deals/batch - Success 200",
			method:         http.MethodPost,
			path:           "/api/deals/batch",
			body:           `{"quantities": [1, 3, 26]}`,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := successEnvelope(t, w)
				assert.Equal(t, float64(3), data["count"])
				assert.Equal(t, float64(105), data["total_cost"])
				results, ok := data["results"].([]interface{})
				require.True(t, ok)
				for _, r := range results {
					dealResult(t, r.(map[string]interface{}))
				}
			},
		},
		{
			name:             "POST /api/deals/cost - Error 400 Invalid JSON",
			method:           http.MethodPost,
			path:             "/api/deals/cost",
			body:             `invalid json`,
			expectedStatus:   http.StatusBadRequest,
			validateResponse: errorEnvelope("invalid_request"),
		},
		{
			name:             "GET /api/deals/history - Error 503 when disabled",
			method:           http.MethodGet,
			path:             "/api/deals/history",
			expectedStatus:   http.StatusServiceUnavailable,
			validateResponse: errorEnvelope("service_unavailable"),
		},
		{
			name:             "GET /api/logs - Error 503 when disabled",
			method:           http.MethodGet,
			path:             "/api/logs",
			expectedStatus:   http.StatusServiceUnavailable,
			validateResponse: errorEnvelope("service_unavailable"),
		},
		{
			name:           "GET /healthz - Success 200",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "ok", decodeJSON[map[string]interface{}](t, w)["status"])
			},
		},
		{
			name:           "GET /readyz - Success 200",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeJSON[map[string]interface{}](t, w)
				assert.Equal(t, "ok", resp["status"])
				assert.Contains(t, resp, "checks")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			tt.validateResponse(t, w)
		})
	}
}
