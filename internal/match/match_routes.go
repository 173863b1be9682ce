package match

import (
	"github.com/DhavalSuthar-24/crease/config"
	mw "github.com/DhavalSuthar-24/crease/internal/middleware"
	"github.com/DhavalSuthar-24/crease/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
)

// MatchRoutes sets up all match-related routes. Reads are public; every
// write needs an admin token and scoring is rate limited per admin.
func MatchRoutes(router *gin.RouterGroup, repo MatchRepository, service *ScoringService, users mw.UserChecker, appConfig *config.Config, limiter *mw.RateLimiter) {
	matchController := NewMatchController(repo, service)

	publicRoutes := router.Group("/matches")
	{
		publicRoutes.GET("", matchController.GetMatches)
		publicRoutes.GET("/:id", matchController.GetMatchByID)
		publicRoutes.GET("/:id/summary", matchController.GetMatchSummary)
	}

	adminRoutes := router.Group("/matches")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users), rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("", matchController.CreateMatch)
		adminRoutes.PUT("/:id", matchController.ReplaceMatch)
		adminRoutes.DELETE("/:id", matchController.DeleteMatch)
		adminRoutes.GET("/:id/context", matchController.GetScoringContext)
	}

	scoringRoutes := adminRoutes.Group("/:id")
	if limiter != nil {
		scoringRoutes.Use(limiter.Middleware())
	}
	{
		scoringRoutes.POST("/events", matchController.ApplyEvent)
		scoringRoutes.POST("/undo", matchController.UndoEvent)
	}
}
