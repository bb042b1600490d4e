package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tradelog/internal/config"
	"tradelog/internal/database"
	"tradelog/internal/handlers"
	"tradelog/internal/logger"
	"tradelog/internal/middleware"
	"tradelog/internal/services"
	"tradelog/internal/validator"

	_ "tradelog/internal/docs" // Import swagger docs
)

// @title           Tradelog API
// @version         1.0
// @description     Tradelog is a record-keeping backend for user accounts and trade records. Trades are passive records, never executed against a market.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators with the Gin binding engine
	validator.Register()

	// Services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	tradeService := services.NewTradeService(db, userService)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	tradeHandler := handlers.NewTradeHandler(tradeService, auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.RequestTimeout(appConfig.RequestTimeout))
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness probe
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public user routes
	users := router.Group("/users")
	users.POST("", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/me", middleware.AuthMiddleware(), authHandler.GetProfile)

	// Trade routes, all ownership-scoped to the authenticated user
	trades := router.Group("/trades")
	trades.Use(middleware.AuthMiddleware())
	trades.POST("", tradeHandler.CreateTrade)
	trades.GET("", tradeHandler.GetUserTrades)
	trades.GET("/:id", tradeHandler.GetTradeByID)
	trades.PUT("/:id", tradeHandler.UpdateTrade)
	trades.PATCH("/:id", tradeHandler.UpdateTrade)
	trades.DELETE("/:id", tradeHandler.DeleteTrade)

	log.Infof("Starting tradelog backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
