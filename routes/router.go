package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/crease/config"
	"github.com/DhavalSuthar-24/crease/internal/auth"
	"github.com/DhavalSuthar-24/crease/internal/broadcast"
	"github.com/DhavalSuthar-24/crease/internal/match"
	"github.com/DhavalSuthar-24/crease/internal/middleware"
	"github.com/DhavalSuthar-24/crease/pkg/validator"
)

// Deps are the long-lived services the HTTP layer is built on.
type Deps struct {
	Config  *config.Config
	Users   auth.AuthRepository
	Matches match.MatchRepository
	Scoring *match.ScoringService
	Hub     *broadcast.Hub
	Limiter *middleware.RateLimiter
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.App.Env == "development" || cfg.App.FrontendURL == "*" {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = []string{cfg.App.FrontendURL}
	}
	return c
}

func SetupRoutes(deps Deps) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.UseJSONNames()

	r := gin.Default()
	r.Use(cors.New(corsConfig(deps.Config)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "viewers": deps.Hub.Count()})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Live viewer stream, optionally ?match=<id>
	r.GET("/ws", gin.WrapF(deps.Hub.HandleWS))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, deps.Users, deps.Config)
	match.MatchRoutes(api, deps.Matches, deps.Scoring, deps.Users, deps.Config, deps.Limiter)

	return r
}
