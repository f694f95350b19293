package middleware

import (
	"net/http"
	"time"

	"orderdesk/pkg/log"
	"orderdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery recovers from panics and answers with a 500 envelope.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)
				response.Fail(c, http.StatusInternalServerError, "服务器内部错误")
			}
		}()
		c.Next()
	}
}

// CallStats records endpoint, status and latency of every request for the monitor endpoints.
func (m Middleware) CallStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m.recorder == nil {
			return
		}
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		m.recorder.RecordCall(endpoint, c.Writer.Status(), time.Since(start))
	}
}
