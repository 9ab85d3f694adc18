// Package middleware provides the gin middleware stack of the deal service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds client supplied IDs.
const maxRequestIDLength = 128

// ContextKey namespaces values stored on the gin context.
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	ClientIDKey  ContextKey = "client_id"
)

// RequestID reuses a well-formed X-Request-ID from the client or generates a UUID v4.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID returns the request ID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}

// GetClientID returns the authenticated client, or "" when auth is off.
func GetClientID(c *gin.Context) string {
	return c.GetString(string(ClientIDKey))
}
