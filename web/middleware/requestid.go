package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

// RequestId tags every response with a request id, keeping an id supplied by
// the caller when present.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIdHeader, id)
		c.Set("request_id", id)
		c.Next()
	}
}
