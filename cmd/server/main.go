package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-advisor-api/internal/advisor/config"
	delivery "stock-advisor-api/internal/advisor/delivery/http"
	"stock-advisor-api/internal/advisor/repository"
	"stock-advisor-api/internal/advisor/service"
	"stock-advisor-api/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the stock advisor API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Stock Advisor API", logger.Field("name", cfg.App.Name))

	// Initialize market data repository
	marketRepo := repository.NewPolygonRepository(cfg, appLogger)

	// Initialize news provider
	var newsRepo repository.NewsRepository
	switch cfg.News.Provider {
	case "rss":
		newsRepo = repository.NewRSSNewsRepository(cfg, appLogger)
	case "newsapi":
		newsRepo = repository.NewNewsAPIRepository(cfg, appLogger)
	default:
		appLogger.Fatal("Invalid news provider specified in config", logger.StringField("provider", cfg.News.Provider))
	}

	// Initialize AI provider
	var aiRepo repository.AIRepository
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		repo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI repository", logger.ErrorField(err))
		}
		aiRepo = repo
	case "openai":
		aiRepo = repository.NewOpenAIRepository(cfg, appLogger)
	default:
		appLogger.Fatal("Invalid AI provider specified in config", logger.StringField("provider", cfg.AI.Provider))
	}

	// Initialize services
	quoteSvc := service.NewQuoteService(marketRepo, appLogger)
	newsSvc := service.NewNewsService(newsRepo, cfg.NewsAPI.PageSize, appLogger)
	advisorySvc := service.NewAdvisoryService(aiRepo, cfg.AI.Provider, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	// Initialize handlers and routes
	api := e.Group("/api")

	stockHandler := delivery.NewStockHandler(quoteSvc, appLogger)
	stockHandler.RegisterRoutes(api)

	newsHandler := delivery.NewNewsHandler(newsSvc, appLogger)
	newsHandler.RegisterRoutes(api)

	analysisHandler := delivery.NewAnalysisHandler(advisorySvc, appLogger)
	analysisHandler.RegisterRoutes(api)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Stock Advisor API
// @version 1.0
// @description Aggregates market data and news and produces AI-backed stock advisories.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{Use: "stock-advisor-api"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing stock-advisor-api CLI: %s\n", err)
		os.Exit(1)
	}
}
