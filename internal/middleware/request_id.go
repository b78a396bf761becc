package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"timesheet-assistant/pkg/log"
)

const headerRequestID = "X-Request-ID"

// RequestID tags the request context with the incoming X-Request-ID, or a
// fresh one, and echoes it back.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(headerRequestID, id)
		c.Next()
	}
}
