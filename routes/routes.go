package routes

import (
	"net/http"
	"time"

	"cleaningco/handlers"
	"cleaningco/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSystemRoutes registers liveness and diagnostics endpoints.
func RegisterSystemRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/api/hello", hb.HelloHandler)
	r.GET("/test", hb.TestDatabaseHandler)
}

// RegisterLeadRoutes registers the lead form endpoints. Submissions are
// rate limited per client IP.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxLeadsPerMin int) {
	api := r.Group("/api/leads")
	{
		api.POST("", middleware.RateLimitMiddleware(maxLeadsPerMin), hb.CreateLeadHandler)
		api.GET("", hb.ListLeadsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxLeadsPerMin int) {
	// Fully open policy; credentials force the origin to be echoed back.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSystemRoutes(r, hb)
	RegisterLeadRoutes(r, hb, maxLeadsPerMin)
}
