package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"nfl-predictions-api/config"
	"nfl-predictions-api/handlers"
	"nfl-predictions-api/middleware"
	"nfl-predictions-api/repository"
	"nfl-predictions-api/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("Successfully connected to MongoDB")
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("MongoDB disconnect error: %v", err)
		}
	}()

	db := client.Database(cfg.Mongo.Database)

	// Redis is optional: the API serves straight from the store without it
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
	}
	defer cache.Close()

	predictions := repository.NewPredictionRepository(db)
	modelPackages := repository.NewModelPackageRepository(db)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to NFL Predictions API"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "UP",
			"message": "NFL Predictions API is running",
		})
	})

	handlers.NewPredictionsHandler(predictions, cache).RegisterRoutes(router.Group("/nflpredictions"))
	handlers.NewModelPackagesHandler(modelPackages, cache).RegisterRoutes(router.Group("/models"))
	router.GET("/ws/live", handlers.LiveWebSocket(cache))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
