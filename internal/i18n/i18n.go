// Package i18n translates user-facing messages.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLocale        = "en"
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator looks messages up by key and locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator with the built-in catalogue.
func NewTranslator() *Translator {
	return &Translator{messages: defaultMessages()}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether locale has a catalogue.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Translatef translates key and formats the result with args.
func (t *Translator) Translatef(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// GetLocale picks the first supported language from Accept-Language.
// Quality values are ignored; order in the header decides.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	tr := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if idx := strings.IndexByte(lang, '-'); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if tr.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

func defaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyAPIKeyRequired:     "API key is required",
			ErrKeyInvalidAPIKey:      "Invalid API key",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyTimeout:            "The request took too long",
			ErrKeyServiceUnavailable: "Service temporarily unavailable",
			ErrKeyInvalidQuantity:    "quantity: must be a non-negative integer",
			ErrKeyQuantityOutOfRange: "quantity: must be between 0 and %d",
			ErrKeyEmptyBatch:         "quantities: must contain at least one quantity",
			ErrKeyBatchTooLarge:      "quantities: at most %d quantities per batch",
			ErrKeyInvalidLimit:       "limit: must be a non-negative integer",
			ErrKeyHistoryDisabled:    "Calculation history is not enabled",
			ErrKeyLogsDisabled:       "Request log storage is not enabled",
			ErrKeyInvalidLogQuery:    "limit and skip must be non-negative and since must not be after until",
		},
		"pt": {
			ErrKeyInvalidRequest:     "Requisição inválida",
			ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
			ErrKeyInternalError:      "Ocorreu um erro inesperado",
			ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
			ErrKeyInvalidAPIKey:      "Chave de API inválida",
			ErrKeyNotFound:           "Não encontrado",
			ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
			ErrKeyTimeout:            "A requisição demorou demais",
			ErrKeyServiceUnavailable: "Serviço temporariamente indisponível",
			ErrKeyInvalidQuantity:    "quantity: deve ser um inteiro não negativo",
			ErrKeyQuantityOutOfRange: "quantity: deve estar entre 0 e %d",
			ErrKeyEmptyBatch:         "quantities: deve conter ao menos uma quantidade",
			ErrKeyBatchTooLarge:      "quantities: no máximo %d quantidades por lote",
			ErrKeyInvalidLimit:       "limit: deve ser um inteiro não negativo",
			ErrKeyHistoryDisabled:    "O histórico de cálculos não está habilitado",
			ErrKeyLogsDisabled:       "O armazenamento de logs de requisições não está habilitado",
			ErrKeyInvalidLogQuery:    "limit e skip devem ser não negativos e since não pode ser posterior a until",
		},
		"nl": {
			ErrKeyInvalidRequest:     "Ongeldig verzoek",
			ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
			ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
			ErrKeyAPIKeyRequired:     "API-sleutel is vereist",
			ErrKeyInvalidAPIKey:      "Ongeldige API-sleutel",
			ErrKeyNotFound:           "Niet gevonden",
			ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
			ErrKeyTimeout:            "Het verzoek duurde te lang",
			ErrKeyServiceUnavailable: "Dienst tijdelijk niet beschikbaar",
			ErrKeyInvalidQuantity:    "quantity: moet een niet-negatief geheel getal zijn",
			ErrKeyQuantityOutOfRange: "quantity: moet tussen 0 en %d liggen",
			ErrKeyEmptyBatch:         "quantities: moet minstens één hoeveelheid bevatten",
			ErrKeyBatchTooLarge:      "quantities: maximaal %d hoeveelheden per batch",
			ErrKeyInvalidLimit:       "limit: moet een niet-negatief geheel getal zijn",
			ErrKeyHistoryDisabled:    "Berekeningsgeschiedenis is niet ingeschakeld",
			ErrKeyLogsDisabled:       "Opslag van verzoeklogs is niet ingeschakeld",
			ErrKeyInvalidLogQuery:    "limit en skip moeten niet-negatief zijn en since mag niet na until liggen",
		},
	}
}
