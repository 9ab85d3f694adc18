package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	origins := []string{"https://shop.example.com"}

	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		wantAllowed    string
	}{
		{
			name:           "preflight from allowed origin",
			origins:        origins,
			method:         http.MethodOptions,
			origin:         "https://shop.example.com",
			expectedStatus: http.StatusNoContent,
			wantAllowed:    "https://shop.example.com",
		},
		{
			name:           "GET from allowed origin",
			origins:        origins,
			method:         http.MethodGet,
			origin:         "https://shop.example.com",
			expectedStatus: http.StatusOK,
			wantAllowed:    "https://shop.example.com",
		},
		{
			name:           "GET from unknown origin is rejected",
			origins:        origins,
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "same-origin request passes through",
			origins:        origins,
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "defaults allow localhost",
			origins:        nil,
			method:         http.MethodGet,
			origin:         DefaultCORSOrigins[0],
			expectedStatus: http.StatusOK,
			wantAllowed:    DefaultCORSOrigins[0],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.wantAllowed, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
