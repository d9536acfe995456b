package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"borderline-backend/pkg/api"
	"borderline-backend/pkg/clients/brevo"
	"borderline-backend/pkg/config"
	"borderline-backend/pkg/logger"
	"borderline-backend/pkg/middleware"
	"borderline-backend/pkg/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	zl, err := logger.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zl.Sync()

	if cfg.BrevoAPIKey == "" {
		zl.Warnf("BREVO_API_KEY is not set, order submissions will fail")
	}

	// Initialize API clients
	brevoClient := brevo.NewClient(cfg.BrevoAPIKey)

	// Initialize services
	relayService := services.NewLeadRelayService(brevoClient, cfg, zl)

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(middleware.Recovery(zl))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(zl))
	router.Use(middleware.CORS())

	// Initialize handlers
	handlers := api.NewHandlers(relayService, cfg, zl)

	// Register routes
	router.POST("/submit-order", handlers.SubmitOrder)
	router.POST("/order-link", handlers.OrderLink)
	router.GET("/health", handlers.HealthCheck)

	zl.Infof("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		zl.Errorf("Error starting server: %v", err)
	}
}
