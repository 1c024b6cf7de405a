// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"log"
	"time"

	"inkwell/cache"
	"inkwell/config"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	posts  store.PostStore
	redis  *redis.Client
}

// New creates a server with explicit dependencies. Tests use this to
// inject an in-memory post store.
func New(cfg *config.Config, posts store.PostStore, redisClient *redis.Client) *Server {
	return &Server{
		config: cfg,
		posts:  posts,
		redis:  redisClient,
	}
}

// NewServer creates a new server instance with all dependencies wired
// for production: the post store over the real filesystem and Redis for
// rate limiting (optional at runtime).
func NewServer(cfg *config.Config) (*Server, error) {
	cache.InitRedis(cfg.RedisURL)

	posts := store.NewFileStore(afero.NewOsFs(), cfg.BlogFile)

	return New(cfg, posts, cache.GetClient()), nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware
	app.Use(middleware.StructuredLogger())

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))

	// CORS middleware
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Prometheus metrics
	prom := fiberprometheus.New("inkwell")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/", s.HealthCheck)

	// Post routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Post("/:id/like", s.LikePost)
	// Generic /:id routes (for item detail, update, delete)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	storeStatus := "healthy"
	if _, err := s.posts.Load(ctx); err != nil {
		storeStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if storeStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "inkwell",
		"version": "1.0.0",
		"status":  storeStatus,
		"checks": fiber.Map{
			"store": storeStatus,
			"redis": redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Inkwell Blog API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Custom error handler
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Close Redis connection
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
