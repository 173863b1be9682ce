package auth

import (
	"github.com/DhavalSuthar-24/crease/config"
	"github.com/DhavalSuthar-24/crease/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, repo AuthRepository, appConfig *config.Config) {
	authController := NewAuthController(repo, appConfig)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/login", authController.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, repo))
	{
		authProtected.GET("/me", authController.GetProfile)
	}
}
