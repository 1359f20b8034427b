package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderXRequestID carries the request correlation id.
const HeaderXRequestID = "X-Request-ID"

// RequestID attaches a correlation id to every request, reusing the one the
// caller sent when present, and echoes it on the response.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderXRequestID, requestID)
		c.Header(HeaderXRequestID, requestID)
		c.Next()
	}
}
