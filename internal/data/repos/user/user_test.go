package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/compass-backend/internal/data/repos/testutil"
	types "github.com/yungbote/compass-backend/internal/domain"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, &types.User{
		ID:               uuid.New(),
		Email:            "userrepo@example.com",
		Password:         "pw",
		Name:             "A B",
		SkillLevel:       types.DefaultSkillLevel,
		CompletedModules: datatypes.NewJSONSlice([]string{}),
		Achievements:     datatypes.NewJSONSlice([]string{}),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	gotByID, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gotByID == nil || gotByID.ID != created.ID {
		t.Fatalf("GetByID: unexpected result: %+v", gotByID)
	}
	if gotByID.SkillLevel != "beginner" {
		t.Fatalf("GetByID: expected default skill level, got %q", gotByID.SkillLevel)
	}

	gotByEmail, err := repo.GetByEmail(ctx, tx, created.Email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if gotByEmail == nil || gotByEmail.Email != created.Email {
		t.Fatalf("GetByEmail: unexpected result: %+v", gotByEmail)
	}

	missing, err := repo.GetByEmail(ctx, tx, "does-not-exist@example.com")
	if err != nil {
		t.Fatalf("GetByEmail (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByEmail (missing): expected nil, got %+v", missing)
	}

	exists, err := repo.EmailExists(ctx, tx, created.Email)
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}

	exists, err = repo.EmailExists(ctx, tx, "does-not-exist@example.com")
	if err != nil {
		t.Fatalf("EmailExists (missing): %v", err)
	}
	if exists {
		t.Fatalf("EmailExists (missing): expected false")
	}

	gotByID.Track = "backend"
	gotByID.TotalPoints = 25
	if _, err := repo.Save(ctx, tx, gotByID); err != nil {
		t.Fatalf("Save: %v", err)
	}
	saved, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID after Save: %v", err)
	}
	if saved.Track != "backend" || saved.TotalPoints != 25 {
		t.Fatalf("Save: changes not persisted: %+v", saved)
	}
}
