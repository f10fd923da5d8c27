package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/compass-backend/internal/http/handlers"
	httpMW "github.com/yungbote/compass-backend/internal/http/middleware"
	"github.com/yungbote/compass-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	ProfileHandler *httpH.ProfileHandler
	HealthHandler  *httpH.HealthHandler

	AuthMiddleware *httpMW.AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	api := r.Group("/api")
	{
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}

		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}

		protected := api.Group("/")
		{
			if cfg.AuthMiddleware != nil {
				protected.Use(cfg.AuthMiddleware.RequireAuth())
			}

			if cfg.ProfileHandler != nil {
				protected.GET("/user", cfg.ProfileHandler.GetProfile)
				protected.PUT("/user", cfg.ProfileHandler.UpdateProfile)
			}
		}
	}

	return r
}
