package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yasmin-center/tanseeq-backend/internal/config"
	"github.com/yasmin-center/tanseeq-backend/internal/handler"
	"github.com/yasmin-center/tanseeq-backend/internal/middleware"
	"github.com/yasmin-center/tanseeq-backend/internal/response"
	"github.com/yasmin-center/tanseeq-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Schedule *handler.ScheduleHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(authService *service.AuthService, handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for login attempts (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		auth.POST("/logout", middleware.RequireCoordinatorJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireCoordinatorJWT(authService), handlers.Auth.GetProfile)
	}

	// ─── 2. Coordinator Group (JWT + Active Session) ───────────────────
	coordinatorAPI := router.Group("/api/v1/coordinator")
	coordinatorAPI.Use(
		middleware.RequireCoordinatorJWT(authService),
		middleware.CheckActiveSession(authService),
	)
	{
		coordinatorAPI.POST("/runs", handlers.Schedule.CreateRun)
		coordinatorAPI.GET("/runs", handlers.Schedule.ListRuns)
		coordinatorAPI.GET("/runs/:id", handlers.Schedule.GetRun)
		coordinatorAPI.GET("/runs/:id/export", handlers.Schedule.ExportRun)
	}

	return router
}
