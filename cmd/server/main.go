package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"minitwitter/backend/internal/auth"
	"minitwitter/backend/internal/config"
	"minitwitter/backend/internal/domain"
	"minitwitter/backend/internal/handler"
	"minitwitter/backend/internal/service"
	"minitwitter/backend/internal/storage"
	"minitwitter/backend/internal/storage/inmemory"
	"minitwitter/backend/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "minitwitter/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Mini Twitter API
// @version         1.0
// @description     This is the API for the Mini Twitter service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	var store storage.Storage
	switch cfg.StorageDriver {
	case "postgres":
		pgStore, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		store = pgStore
		log.Println("Database connection established.")
	case "memory":
		store = inmemory.New()
		log.Println("Using in-memory storage; data is lost on restart.")
	default:
		log.Fatalf("Unknown STORAGE_DRIVER %q (expected postgres or memory)", cfg.StorageDriver)
	}

	filter := domain.NewModerationFilter(strings.Split(cfg.BannedWords, ","))
	svc := service.New(store, filter, service.Config{
		FeedMode:         domain.FeedMode(cfg.FeedMode),
		RejectDuplicates: cfg.RejectDuplicatePosts,
		Cooldown:         time.Duration(cfg.PostCooldownSeconds) * time.Second,
	}, logger)
	h := handler.New(svc)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.RegisterUser)
			authRoutes.POST("/login", h.LoginUser)
			authRoutes.POST("/logout", h.LogoutUser)
		}

		// The feed works anonymously in global mode, so auth is optional here.
		apiV1.GET("/feed", auth.OptionalAuthMiddleware(), h.GetFeed)

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/:username", h.GetUserByUsername)
			userRoutes.POST("/:username/follow", h.FollowUser)
			userRoutes.POST("/:username/unfollow", h.UnfollowUser)
		}

		// Tweet routes (protected)
		tweetRoutes := apiV1.Group("/tweets")
		tweetRoutes.Use(auth.AuthMiddleware())
		{
			tweetRoutes.POST("", h.CreateTweet)
			tweetRoutes.DELETE("/:id", h.DeleteTweet)
			tweetRoutes.POST("/:id/like", h.LikeTweet)
			tweetRoutes.POST("/:id/unlike", h.UnlikeTweet)
		}

		apiV1.GET("/notifications", auth.AuthMiddleware(), h.GetNotifications)
	}

	fmt.Println("Server is running on :" + cfg.Port)
	fmt.Println("Swagger UI is available at http://localhost:" + cfg.Port + "/swagger/index.html")
	log.Fatal(router.Run(":" + cfg.Port))
}
