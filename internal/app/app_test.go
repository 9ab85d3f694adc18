//go:build !integration

package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/deal-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Config
		header     map[string]string
		wantStatus int
	}{
		{
			name: "serves deals with cache and rate limit",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080", RateLimit: 100, RateWindow: time.Minute},
				Cache:  config.CacheConfig{Size: 1000, TTL: 5 * time.Minute},
				Log:    config.LogConfig{Level: "error"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "rejects missing api key when auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth:   config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"test-key": true}},
				Log:    config.LogConfig{Level: "error"},
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "accepts valid api key when auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth:   config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"test-key": true}},
				Log:    config.LogConfig{Level: "error"},
			},
			header:     map[string]string{"X-API-Key": "test-key"},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application := InitializeApp(tt.cfg)
			defer application.Close()
			require.NotNil(t, application.Router)

			req := httptest.NewRequest(http.MethodGet, "/api/deals/26", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			application.Router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body struct {
				Data struct {
					Quantity  int64 `json:"quantity"`
					TotalCost int64 `json:"total_cost"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, int64(26), body.Data.Quantity)
			assert.Equal(t, int64(92), body.Data.TotalCost)
		})
	}
}

func TestInitializeApp_HealthWithoutDatabase(t *testing.T) {
	application := InitializeApp(config.Config{Log: config.LogConfig{Level: "error"}})
	defer application.Close()

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
