package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/deal-service/internal/domain/dto"
	"github.com/guttosm/deal-service/internal/i18n"
)

const (
	APIKeyHeader = "X-API-Key"
	APIKeyQuery  = "api_key"
)

// APIKeyAuth rejects requests without one of validKeys. The header wins over
// the query parameter. An empty key set disables the check.
// Accepted requests get a client ID derived from the key, never the key itself.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		case !matchesAny(key, validKeys):
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(string(ClientIDKey), ClientID(key))
		c.Next()
	}
}

// ClientID returns the short fingerprint logged in place of an API key.
func ClientID(key string) string {
	sum := sha256.Sum256([]byte(key))
	return "key-" + hex.EncodeToString(sum[:4])
}

func matchesAny(key string, validKeys map[string]bool) bool {
	found := 0
	for k, enabled := range validKeys {
		if enabled {
			found |= subtle.ConstantTimeCompare([]byte(k), []byte(key))
		}
	}
	return found == 1
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
}
