package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDHeader carries the request ID on both the request and the response.
const requestIDHeader = "X-Request-Id"

// RequestID tags every request with an ID for log correlation. An inbound
// X-Request-Id from an upstream proxy is kept; otherwise a fresh UUID is
// assigned. The ID is stored on the gin context and echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
