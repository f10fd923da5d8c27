package learning

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/compass-backend/internal/domain"
	"github.com/yungbote/compass-backend/internal/pkg/logger"
)

// LearningPathRepo is the learning-path half of the storage contract.
type LearningPathRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.LearningPath, error)
	// Upsert overwrites the user's existing path with the incoming track,
	// modules, progress and adaptation history, or creates the path when none
	// exists. Every incoming field is applied; the caller fills defaults.
	Upsert(ctx context.Context, tx *gorm.DB, path *types.LearningPath) (*types.LearningPath, error)
}

type learningPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	repoLog := baseLog.With("repo", "LearningPathRepo")
	return &learningPathRepo{db: db, log: repoLog}
}

func (lr *learningPathRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.LearningPath, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result types.LearningPath
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (lr *learningPathRepo) Upsert(ctx context.Context, tx *gorm.DB, path *types.LearningPath) (*types.LearningPath, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	existing, err := lr.GetByUserID(ctx, transaction, path.UserID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if path.ID == uuid.Nil {
			path.ID = uuid.New()
		}
		if err := transaction.WithContext(ctx).Create(path).Error; err != nil {
			return nil, err
		}
		return path, nil
	}

	existing.Track = path.Track
	existing.Modules = path.Modules
	existing.Progress = path.Progress
	existing.AdaptationHistory = path.AdaptationHistory
	if err := transaction.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
