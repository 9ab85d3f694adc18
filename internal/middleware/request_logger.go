package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/deal-service/internal/domain/model"
	"github.com/guttosm/deal-service/internal/logger"
	"github.com/rs/zerolog"
)

// RequestLogger logs every request through zerolog and, when sink is not nil,
// persists it through the async logger.
func RequestLogger(sink *AsyncLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		requestID := GetRequestID(c)
		fields := AuditFields(c)

		log := logger.Logger()
		event := log.WithLevel(levelFor(status)).
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", status).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if clientID := GetClientID(c); clientID != "" {
			event = event.Str("client_id", clientID)
		}
		if len(fields) > 0 {
			event = event.Fields(fields)
		}
		event.Msg("HTTP request")

		if sink == nil {
			return
		}
		entry := &model.LogEntry{
			Timestamp:  start.UTC(),
			Level:      levelFor(status).String(),
			Message:    "HTTP request",
			RequestID:  requestID,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: status,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			ClientID:   GetClientID(c),
			Fields:     fields,
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}
		sink.Log(entry)
	}
}

func levelFor(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
