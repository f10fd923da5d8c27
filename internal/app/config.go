package app

import (
	"time"

	"github.com/yungbote/compass-backend/internal/pkg/logger"
	"github.com/yungbote/compass-backend/internal/utils"
)

type Config struct {
	JWTSecretKey string
	TokenTTL     time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "dev-secret-key-change-in-production", log)
	tokenTTLHours := utils.GetEnvAsInt("TOKEN_TTL_HOURS", 168, log)
	return Config{
		JWTSecretKey: jwtSecretKey,
		TokenTTL:     time.Duration(tokenTTLHours) * time.Hour,
	}
}
