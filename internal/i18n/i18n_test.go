//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name   string
		key    string
		locale string
		want   string
	}{
		{name: "english", key: ErrKeyEmptyBatch, locale: "en", want: "quantities: must contain at least one quantity"},
		{name: "portuguese", key: ErrKeyInvalidRequest, locale: "pt", want: "Requisição inválida"},
		{name: "dutch", key: ErrKeyNotFound, locale: "nl", want: "Niet gevonden"},
		{name: "logs disabled", key: ErrKeyLogsDisabled, locale: "pt", want: "O armazenamento de logs de requisições não está habilitado"},
		{name: "empty locale", key: ErrKeyNotFound, locale: "", want: "Not found"},
		{name: "unsupported locale", key: ErrKeyNotFound, locale: "fr", want: "Not found"},
		{name: "unknown key", key: "unknown.key", locale: "pt", want: "unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_Translatef(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "quantities: at most 1000 quantities per batch", tr.Translatef(ErrKeyBatchTooLarge, "en", 1000))
	assert.Equal(t, "quantity: deve estar entre 0 e 10", tr.Translatef(ErrKeyQuantityOutOfRange, "pt", 10))
}

func TestTranslator_CataloguesAreComplete(t *testing.T) {
	tr := NewTranslator()
	for locale, msgs := range tr.messages {
		for key := range tr.messages[DefaultLocale] {
			assert.Contains(t, msgs, key, "locale %s misses %s", locale, key)
		}
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "no header", header: "", want: DefaultLocale},
		{name: "portuguese", header: "pt", want: "pt"},
		{name: "region is stripped", header: "pt-BR", want: "pt"},
		{name: "upper case", header: "NL", want: "nl"},
		{name: "first supported wins", header: "fr-FR,nl;q=0.9,en;q=0.8", want: "nl"},
		{name: "nothing supported", header: "fr,de", want: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}

			assert.Equal(t, tt.want, GetLocale(c))
		})
	}
}
