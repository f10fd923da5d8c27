package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/compass-backend/internal/pkg/logger"
	"github.com/yungbote/compass-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	Profile services.ProfileService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	return Services{
		Auth:    services.NewAuthService(db, log, repos.User, cfg.JWTSecretKey, cfg.TokenTTL),
		Profile: services.NewProfileService(db, log, repos.User, repos.LearningPath),
	}
}
