package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	documentsRepo "cleaningco/database/repository/documents"
	"cleaningco/middleware"
	"cleaningco/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	probeTimeout      = 5 * time.Second
	maxProbeErrLen    = 50
	maxCollectionList = 10
)

// SystemHandler serves liveness and diagnostics endpoints. Store may be nil
// when the service runs without a database.
type SystemHandler struct {
	Store  documentsRepo.DocumentStore
	Getenv func(string) string
}

func NewSystemHandler(store documentsRepo.DocumentStore) *SystemHandler {
	return &SystemHandler{Store: store, Getenv: os.Getenv}
}

// RootHandler handles GET /.
func (h *SystemHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Cleaning Company Backend Running"})
}

// HelloHandler handles GET /api/hello.
func (h *SystemHandler) HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// DiagnosticsResponse is the body of GET /test.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// TestDatabaseHandler handles GET /test. It always answers 200; probe
// failures are reported inside the body.
func (h *SystemHandler) TestDatabaseHandler(c *gin.Context) {
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	h.probe(c.Request.Context(), &resp)
	if resp.ConnectionStatus != "Connected" || resp.Database != "✅ Connected & Working" {
		middleware.GetLogger(c).Warn("Database probe degraded", zap.String("database", resp.Database))
	}

	resp.DatabaseURL = envStatus(h.getenv("DATABASE_URL"))
	resp.DatabaseName = envStatus(h.getenv("DATABASE_NAME"))
	c.JSON(http.StatusOK, resp)
}

func (h *SystemHandler) probe(ctx context.Context, resp *DiagnosticsResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp.Database = "❌ Error: " + utils.Truncate(fmt.Sprint(r), maxProbeErrLen)
		}
	}()

	if h.Store == nil {
		resp.Database = "⚠️  Available but not initialized"
		return
	}
	resp.Database = "✅ Available"
	resp.ConnectionStatus = "Connected"

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	names, err := h.Store.ListCollectionNames(ctx)
	if err != nil {
		resp.Database = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), maxProbeErrLen)
		return
	}
	if len(names) > maxCollectionList {
		names = names[:maxCollectionList]
	}
	resp.Collections = names
	resp.Database = "✅ Connected & Working"
}

func (h *SystemHandler) getenv(key string) string {
	if h.Getenv == nil {
		return os.Getenv(key)
	}
	return h.Getenv(key)
}

func envStatus(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
