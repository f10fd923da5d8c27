package learning

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/compass-backend/internal/data/repos/testutil"
	types "github.com/yungbote/compass-backend/internal/domain"
)

func TestLearningPathRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewLearningPathRepo(db, testutil.Logger(t))
	ctx := context.Background()
	userID := uuid.New()

	missing, err := repo.GetByUserID(ctx, tx, userID)
	if err != nil {
		t.Fatalf("GetByUserID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByUserID (missing): expected nil, got %+v", missing)
	}

	first, err := repo.Upsert(ctx, tx, &types.LearningPath{
		UserID:            userID,
		Track:             "backend",
		Modules:           datatypes.JSON(`[{"id":"mod-1"},{"id":"mod-2"}]`),
		Progress:          0.25,
		AdaptationHistory: datatypes.JSON(`[]`),
	})
	if err != nil {
		t.Fatalf("Upsert (create): %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatalf("Upsert (create): expected assigned id")
	}

	second, err := repo.Upsert(ctx, tx, &types.LearningPath{
		UserID:            userID,
		Track:             "frontend",
		Modules:           datatypes.JSON(`[{"id":"mod-3"}]`),
		Progress:          0.5,
		AdaptationHistory: datatypes.JSON(`[{"event":"difficulty_changed"}]`),
	})
	if err != nil {
		t.Fatalf("Upsert (update): %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("Upsert (update): expected same row, got %s vs %s", second.ID, first.ID)
	}

	var count int64
	if err := tx.Model(&types.LearningPath{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count paths: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one path per user, got %d", count)
	}

	got, err := repo.GetByUserID(ctx, tx, userID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.Track != "frontend" || got.Progress != 0.5 {
		t.Fatalf("Upsert (update): fields not overwritten: %+v", got)
	}
}
