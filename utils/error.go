package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxDetailLen caps downstream error messages echoed to clients.
const maxDetailLen = 200

// ErrorResponse is the body of every error reply. Detail is either a message
// or a list of violations.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ErrorHandler is a middleware that turns panics into a JSON 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal Server Error"})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, detail any) {
	if msg, ok := detail.(string); ok {
		detail = Truncate(msg, maxDetailLen)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
