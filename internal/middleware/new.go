package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"linear-memos-sync/pkg/log"
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}

// RequestID attaches a request id to every request, honoring an inbound
// X-Request-ID when the edge proxy already set one.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
