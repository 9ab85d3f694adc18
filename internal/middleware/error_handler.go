package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/deal-service/internal/domain/dto"
	"github.com/guttosm/deal-service/internal/i18n"
	"github.com/guttosm/deal-service/internal/logger"
)

// ErrorHandler logs errors attached to the context and writes a 500 if
// the handler did not produce a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		event := logger.WithRequestID(requestID).Warn()
		if err.IsType(gin.ErrorTypePrivate) {
			event = logger.WithRequestID(requestID).Error()
		}
		event.
			Err(err.Err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", c.Writer.Status()).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
		c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
	}
}
