// Package domain re-exports the per-area model packages under one import,
// conventionally aliased as `types`.
package domain

import (
	"github.com/yungbote/compass-backend/internal/domain/learning"
	"github.com/yungbote/compass-backend/internal/domain/user"
)

type (
	User         = user.User
	LearningPath = learning.LearningPath
)

const DefaultSkillLevel = user.DefaultSkillLevel
