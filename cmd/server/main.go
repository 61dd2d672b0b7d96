package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"email-template-server/internal/config"
	"email-template-server/internal/extractor"
	"email-template-server/internal/flow"
	"email-template-server/internal/generator"
	"email-template-server/internal/handler"
	"email-template-server/pkg/logger"
	"email-template-server/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ginprometheus "github.com/zsais/go-gin-prometheus"
)

func main() {
	envFile := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	cfg, err := config.LoadConfig(*envFile)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized successfully", zap.String("logLevel", cfg.LogLevel))
	zap.L().Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("ai_model", cfg.AIModel),
		zap.String("ai_base_url", cfg.AIBaseURL),
		zap.Int("fetch_concurrency", cfg.FetchConcurrency),
	)

	productExtractor := extractor.New(extractor.Config{
		Timeout:      cfg.FetchTimeout,
		UserAgent:    cfg.FetchUserAgent,
		MaxBodyBytes: cfg.FetchMaxBodyBytes,
		Concurrency:  cfg.FetchConcurrency,
	}, log)

	clientFactory := generator.NewOpenAIClientFactory(generator.ClientConfig{
		Model:       cfg.AIModel,
		BaseURL:     cfg.AIBaseURL,
		Temperature: cfg.AITemperature,
		Timeout:     cfg.AITimeout,
	}, log)
	templateGenerator := generator.NewService(clientFactory, log)

	controller := flow.NewController(productExtractor, templateGenerator, log)
	templateHandler := handler.NewTemplateHandler(productExtractor, controller, templateGenerator, log)

	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.GinZapLogger(log))
	router.Use(gin.Recovery())

	// Prometheus должен быть подключен до регистрации маршрутов.
	p := ginprometheus.NewPrometheus("gin")
	p.Use(router)

	corsConfig := cors.DefaultConfig()
	allowedOrigins := cfg.GetAllowedOrigins()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
		zap.L().Info("CORSAllowedOrigins not set, allowing default", zap.String("origin", "http://localhost:3000"))
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	templateHandler.RegisterRoutes(router, cfg.ServerBasePath)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort), zap.String("base_path", cfg.ServerBasePath))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
