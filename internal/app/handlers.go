package app

import (
	"gorm.io/gorm"

	httpH "github.com/yungbote/compass-backend/internal/http/handlers"
	httpMW "github.com/yungbote/compass-backend/internal/http/middleware"
	"github.com/yungbote/compass-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth    *httpH.AuthHandler
	Profile *httpH.ProfileHandler
	Health  *httpH.HealthHandler
}

func wireHandlers(db *gorm.DB, services Services) Handlers {
	return Handlers{
		Auth:    httpH.NewAuthHandler(services.Auth, services.Profile),
		Profile: httpH.NewProfileHandler(services.Profile),
		Health:  httpH.NewHealthHandler(db),
	}
}

func wireMiddleware(log *logger.Logger, services Services) *httpMW.AuthMiddleware {
	return httpMW.NewAuthMiddleware(log, services.Auth)
}
