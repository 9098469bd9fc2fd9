// File: cleaningco/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleaningco/config"
	"cleaningco/database"
	documentsRepo "cleaningco/database/repository/documents"
	"cleaningco/handlers"
	"cleaningco/routes"
	"cleaningco/services/lead"
	"cleaningco/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// The store stays nil when the database is not configured or the
	// client cannot be created; lead routes then answer 500.
	var store documentsRepo.DocumentStore
	if config.DatabaseConfigured() {
		client, err := database.InitDB(context.Background(), config.AppConfig.DatabaseURL, logger)
		if err != nil {
			logger.Error("main: database unavailable", zap.Error(err))
		} else {
			store = documentsRepo.NewMongoDocumentStore(client, config.AppConfig.DatabaseName)
		}
	} else {
		logger.Warn("main: DATABASE_URL or DATABASE_NAME not set; running without a database")
	}

	leadService := &lead.DefaultLeadService{Store: store}
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewSystemHandler(store),
		handlers.NewLeadHandler(leadService),
	)
	router, err := routes.NewRouter(handlerBundle, logger, routes.RouterConfig{
		MaxLeadsPerMin: config.AppConfig.MaxRequestsPerMin,
		TrustedProxies: config.AppConfig.TrustedProxies,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	port := config.AppConfig.Port
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Close(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
