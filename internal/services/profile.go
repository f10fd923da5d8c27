package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	learningRepoPkg "github.com/yungbote/compass-backend/internal/data/repos/learning"
	userRepoPkg "github.com/yungbote/compass-backend/internal/data/repos/user"
	types "github.com/yungbote/compass-backend/internal/domain"
	"github.com/yungbote/compass-backend/internal/pkg/apperr"
	"github.com/yungbote/compass-backend/internal/pkg/logger"
)

// ProfilePatch is a sparse update: nil fields keep their stored values, and
// list/count fields replace the stored value outright.
type ProfilePatch struct {
	Track               *string   `json:"track"`
	AssessmentCompleted *bool     `json:"assessmentCompleted"`
	SkillLevel          *string   `json:"skillLevel"`
	CompletedModules    *[]string `json:"completedModules"`
	Achievements        *[]string `json:"achievements"`
	TotalPoints         *int      `json:"totalPoints"`
	// CurrentPath, when present and non-null, overwrites every path field
	// (upsert); omitted sub-fields fall back to defaults, not prior values.
	CurrentPath *PathPatch `json:"currentPath"`
}

type PathPatch struct {
	Track             string          `json:"track"`
	Modules           json.RawMessage `json:"modules"`
	Progress          *float64        `json:"progress"`
	AdaptationHistory json.RawMessage `json:"adaptationHistory"`
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (*ProfileView, error)
}

type profileService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo userRepoPkg.UserRepo
	pathRepo learningRepoPkg.LearningPathRepo
}

func NewProfileService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userRepoPkg.UserRepo,
	pathRepo learningRepoPkg.LearningPathRepo,
) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{
		db:       db,
		log:      serviceLog,
		userRepo: userRepo,
		pathRepo: pathRepo,
	}
}

func (ps *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := ps.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	path, err := ps.pathRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return NewProfileView(user, path), nil
}

// UpdateProfile applies the patch inside one transaction. The path upsert
// runs first and the user row last, so the user's updated_at acts as the
// completion fence a concurrent reader can key off.
func (ps *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (*ProfileView, error) {
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := ps.userRepo.GetByID(ctx, tx, userID)
		if err != nil {
			return apperr.Store(err)
		}
		if user == nil {
			return apperr.NotFound("user")
		}

		if patch.Track != nil {
			user.Track = *patch.Track
		}
		if patch.AssessmentCompleted != nil {
			user.AssessmentCompleted = *patch.AssessmentCompleted
		}
		if patch.SkillLevel != nil {
			user.SkillLevel = *patch.SkillLevel
		}
		if patch.CompletedModules != nil {
			user.CompletedModules = datatypes.NewJSONSlice(*patch.CompletedModules)
		}
		if patch.Achievements != nil {
			user.Achievements = datatypes.NewJSONSlice(*patch.Achievements)
		}
		if patch.TotalPoints != nil {
			user.TotalPoints = *patch.TotalPoints
		}

		if patch.CurrentPath != nil {
			path, err := pathFromPatch(userID, patch.CurrentPath)
			if err != nil {
				return err
			}
			if _, err := ps.pathRepo.Upsert(ctx, tx, path); err != nil {
				return apperr.Store(err)
			}
		}

		// Refreshed even when only the path changed.
		user.UpdatedAt = time.Now().UTC()
		if _, err := ps.userRepo.Save(ctx, tx, user); err != nil {
			return apperr.Store(err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrValidation) || errors.Is(err, apperr.ErrStore) {
			return nil, err
		}
		return nil, apperr.Store(err)
	}

	return ps.GetProfile(ctx, userID)
}

func pathFromPatch(userID uuid.UUID, patch *PathPatch) (*types.LearningPath, error) {
	if patch.Track == "" {
		return nil, apperr.Validation("currentPath.track is required")
	}
	if len(patch.Modules) == 0 {
		return nil, apperr.Validation("currentPath.modules is required")
	}

	progress := 0.0
	if patch.Progress != nil {
		progress = *patch.Progress
	}
	history := patch.AdaptationHistory
	if len(history) == 0 {
		history = json.RawMessage("[]")
	}

	return &types.LearningPath{
		UserID:            userID,
		Track:             patch.Track,
		Modules:           datatypes.JSON(patch.Modules),
		Progress:          progress,
		AdaptationHistory: datatypes.JSON(history),
	}, nil
}
