package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request with the request id attached. Websocket
// upgrades log on connect only; the long-lived connection itself is quiet.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		line := "[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s"
		args := []any{
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(time.Since(start).Microseconds()) / 1000.0,
			c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			line += " errors=%q"
			args = append(args, c.Errors.String())
		}
		log.Printf(line, args...)
	}
}
