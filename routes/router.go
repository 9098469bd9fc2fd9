package routes

import (
	"fmt"

	"cleaningco/handlers"
	"cleaningco/middleware"
	"cleaningco/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig carries the settings the route table depends on.
type RouterConfig struct {
	// MaxLeadsPerMin limits lead submissions per client IP; <= 0 is unlimited.
	MaxLeadsPerMin int
	// TrustedProxies may set X-Forwarded-For / X-Real-IP. Empty means the
	// client IP is always the socket address.
	TrustedProxies []string
}

// NewRouter builds the engine with the global middleware chain and every route.
func NewRouter(hb *handlers.HandlerBundle, logger *zap.Logger, cfg RouterConfig) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))

	RegisterRoutes(router, hb, cfg.MaxLeadsPerMin)
	return router, nil
}
