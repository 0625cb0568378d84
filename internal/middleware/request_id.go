package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"personal-task-management/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags the request context with an id (taken from the caller when present)
// so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
