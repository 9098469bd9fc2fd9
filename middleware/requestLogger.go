package middleware

import (
	"time"

	"cleaningco/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	loggerKey       = "logger"
	requestIDHeader = "X-Request-ID"
)

// incomingRequestID keeps a caller-supplied ID only if it is a UUID, in
// canonical form.
func incomingRequestID(h string) string {
	if h == "" || len(h) > 45 {
		return ""
	}
	id, err := uuid.Parse(h)
	if err != nil {
		return ""
	}
	return id.String()
}

// RequestLogger tags each request with an ID (the caller's X-Request-ID when
// it is a UUID), stores a child logger under "logger" in the gin context and
// writes one access line when done.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := incomingRequestID(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(requestIDHeader, requestID)

		logger := base.With(zap.String("request_id", requestID))
		c.Set(loggerKey, logger)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// GetLogger retrieves the request logger, falling back to the global one.
func GetLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(loggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
