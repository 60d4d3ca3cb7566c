package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobtrackr/jobtracker-api/internal/api/handler"
	"github.com/jobtrackr/jobtracker-api/internal/api/middleware"
	"github.com/jobtrackr/jobtracker-api/internal/api/ws"
	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
	"github.com/jobtrackr/jobtracker-api/internal/core/service"
	mongodb "github.com/jobtrackr/jobtracker-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobtrackr/jobtracker-api/internal/infrastructure/db/redis"
	"github.com/jobtrackr/jobtracker-api/internal/pkg/config"
)

// RouterDeps carries the long-lived infrastructure the router wires together.
type RouterDeps struct {
	Config    *config.Config
	Mongo     *mongo.Database
	Redis     *redis.Client
	Publisher ports.Publisher
	Hub       *ws.Hub
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobtracker"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	jobRepo := mongodb.NewJobRepository(deps.Mongo)
	feedbackRepo := mongodb.NewFeedbackRepository(deps.Mongo)

	// --- Services ---
	authService := service.NewAuthService(userRepo, deps.Config.JWTSecret, 24*time.Hour)
	jobService := service.NewJobService(jobRepo, deps.Publisher, deps.Logger)
	feedbackService := service.NewFeedbackService(feedbackRepo, deps.Publisher, deps.Logger)
	adminService := service.NewAdminService(userRepo, jobRepo, feedbackRepo, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	limiter := redisdb.NewRateLimiter(deps.Redis, deps.Config.RateLimit.Requests, deps.Config.RateLimit.Window)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, limiter)
	adminHandler := handler.NewAdminHandler(adminService)

	authMiddleware := middleware.Auth(deps.Config.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Job routes (owner-scoped, auth required) ---
	jobs := e.Group("/jobs", authMiddleware)
	jobs.GET("", jobHandler.List)
	jobs.POST("", jobHandler.Create)
	jobs.GET("/stats/overview", jobHandler.Stats)
	jobs.GET("/:id", jobHandler.Get)
	jobs.PUT("/:id", jobHandler.Update)
	jobs.DELETE("/:id", jobHandler.Delete)

	// --- Feedback routes (public) ---
	e.POST("/feedback", feedbackHandler.Create)
	e.GET("/feedback/public", feedbackHandler.PublicList)
	e.GET("/feedback/stats", feedbackHandler.Stats)

	// --- Admin routes (auth + admin role) ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Overview)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/toggle-status", adminHandler.ToggleUserStatus)
	admin.GET("/jobs", adminHandler.ListJobs)
	admin.GET("/feedback", adminHandler.ListFeedback)
	admin.PUT("/feedback/:id/status", adminHandler.UpdateFeedbackStatus)
	admin.DELETE("/feedback/:id", adminHandler.DeleteFeedback)

	// --- Realtime notifications ---
	e.GET("/ws", ws.Serve(deps.Hub), authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
