package app

import (
	"gorm.io/gorm"

	learningRepoPkg "github.com/yungbote/compass-backend/internal/data/repos/learning"
	userRepoPkg "github.com/yungbote/compass-backend/internal/data/repos/user"
	"github.com/yungbote/compass-backend/internal/pkg/logger"
)

type Repos struct {
	User         userRepoPkg.UserRepo
	LearningPath learningRepoPkg.LearningPathRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:         userRepoPkg.NewUserRepo(db, log),
		LearningPath: learningRepoPkg.NewLearningPathRepo(db, log),
	}
}
