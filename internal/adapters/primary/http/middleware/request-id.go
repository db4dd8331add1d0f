package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// ContextRequestID is the gin context key the request logger reads.
const ContextRequestID = "request_id"

// RequestID echoes an incoming X-Request-ID or generates one, storing it
// on the context and mirroring it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Header(headerRequestID, id)

		c.Next()
	}
}
