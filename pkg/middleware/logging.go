package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikinet/chat-server/pkg/logger"
)

// RequestLogger registra uma linha estruturada por requisição
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"request_id", GetRequestID(c),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("requisição falhou", fields...)
		case status >= 400:
			log.Warn("requisição rejeitada", fields...)
		default:
			log.Info("requisição concluída", fields...)
		}
	}
}
