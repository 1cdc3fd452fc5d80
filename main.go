package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"studioquote/config"
	"studioquote/handlers"
	"studioquote/middleware"
	"studioquote/routes"
	"studioquote/services/intelligence"
	"studioquote/services/session"
	"studioquote/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitSummaryCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionService := &session.DefaultSessionService{
		Store: session.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL),
	}

	geminiClient, err := intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	summaryService := &intelligence.DefaultSummaryService{
		Generator: geminiClient,
		Cache:     intelligence.NewRedisSummaryCache(utils.GetSummaryCacheClient(), sessionTTL),
	}

	// handlers.
	quoteHandler := handlers.NewQuoteHandler()
	sessionHandler := handlers.NewQuoteSessionHandler(sessionService, summaryService, logger)
	exportHandler := handlers.NewExportHandler(sessionService, logger)

	handlerBundle := &handlers.HandlerBundle{
		GetCatalog:   quoteHandler.GetCatalog,
		PreviewQuote: quoteHandler.PreviewQuote,

		InitiateSession: sessionHandler.InitiateSession,
		GetSession:      sessionHandler.GetSession,
		UpdateSelection: sessionHandler.UpdateSelection,
		SetContact:      sessionHandler.SetContact,
		AdvanceSession:  sessionHandler.AdvanceSession,
		BackSession:     sessionHandler.BackSession,
		CancelSession:   sessionHandler.CancelSession,
		GenerateSummary: sessionHandler.GenerateSummary,

		ExportPDF:   exportHandler.ExportPDF,
		ExportExcel: exportHandler.ExportExcel,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
