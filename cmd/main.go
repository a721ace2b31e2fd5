package main

import (
	"farm-service/internal/chatbot"
	"farm-service/internal/dashboard"
	"farm-service/internal/geo"
	"farm-service/internal/handler"
	"farm-service/internal/middleware"
	"farm-service/internal/model"
	"farm-service/internal/repository"
	"farm-service/internal/weather"
	"farm-service/pkg/config"
	"farm-service/pkg/database"
	"farm-service/pkg/jwtutil"
	"farm-service/pkg/logger"
	"farm-service/prometheus"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting farm service...", cfg.LogConfig()...)

	// Initialize database
	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Run migrations
	if err := database.MigrateModels(
		&model.User{},
		&model.LandParcel{},
		&model.Crop{},
		&model.InventoryItem{},
		&model.ToolEquipment{},
		&model.FinancialRecord{},
		&model.Notification{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Optional Redis cache for weather responses
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info("Redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// Wire up the dashboard aggregator and external API clients
	aggregator := dashboard.NewAggregator(repository.NewDashboardStore(db), log)
	dashboardHandler := handler.NewDashboardHandler(aggregator)
	weatherHandler := handler.NewWeatherHandler(weather.NewClient(&cfg.Weather, redisClient, log))
	locationHandler := handler.NewLocationHandler(geo.NewClient(&cfg.Geocoder, log))
	chatHandler := handler.NewChatHandler(chatbot.NewResponder())

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Authentication routes
	auth := e.Group("/auth")
	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)

	// API routes - all require authentication
	api := e.Group("/api")
	api.Use(middleware.AuthMiddleware)

	// User profile
	users := api.Group("/users")
	users.GET("/profile", handler.GetProfile)
	users.PATCH("/profile", handler.UpdateProfile)
	users.POST("/change-password", handler.ChangePassword)

	// Land parcels
	land := api.Group("/land-parcels")
	land.GET("", handler.ListLandParcels)
	land.GET("/:id", handler.GetLandParcel)
	land.POST("", handler.CreateLandParcel)
	land.PUT("/:id", handler.UpdateLandParcel)
	land.DELETE("/:id", handler.DeleteLandParcel)

	// Crops
	crops := api.Group("/crops")
	crops.GET("", handler.ListCrops)
	crops.GET("/:id", handler.GetCrop)
	crops.POST("", handler.CreateCrop)
	crops.PUT("/:id", handler.UpdateCrop)
	crops.DELETE("/:id", handler.DeleteCrop)

	// Inventory
	inventory := api.Group("/inventory")
	inventory.GET("", handler.ListInventory)
	inventory.GET("/:id", handler.GetInventoryItem)
	inventory.POST("", handler.CreateInventoryItem)
	inventory.PUT("/:id", handler.UpdateInventoryItem)
	inventory.DELETE("/:id", handler.DeleteInventoryItem)

	// Tools and equipment
	tools := api.Group("/tools")
	tools.GET("", handler.ListTools)
	tools.GET("/:id", handler.GetTool)
	tools.POST("", handler.CreateTool)
	tools.PUT("/:id", handler.UpdateTool)
	tools.DELETE("/:id", handler.DeleteTool)

	// Financial records
	finance := api.Group("/financial-records")
	finance.GET("", handler.ListFinancialRecords)
	finance.GET("/:id", handler.GetFinancialRecord)
	finance.POST("", handler.CreateFinancialRecord)
	finance.PUT("/:id", handler.UpdateFinancialRecord)
	finance.DELETE("/:id", handler.DeleteFinancialRecord)

	// Notifications
	notifications := api.Group("/notifications")
	notifications.GET("", handler.ListNotifications)
	notifications.POST("", handler.CreateNotification)
	notifications.PATCH("/:id/read", handler.MarkNotificationRead)
	notifications.POST("/read-all", handler.MarkAllNotificationsRead)
	notifications.DELETE("/:id", handler.DeleteNotification)

	// Dashboard, weather, geocoding and the advisor chat
	api.GET("/dashboard", dashboardHandler.GetSnapshot)
	api.GET("/weather", weatherHandler.GetCurrent)
	api.GET("/geocode", locationHandler.Search)
	api.GET("/geocode/reverse", locationHandler.Reverse)
	api.GET("/chat/greeting", chatHandler.Greeting)
	api.POST("/chat", chatHandler.Send)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
