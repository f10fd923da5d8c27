package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/compass-backend/internal/domain"
	"github.com/yungbote/compass-backend/internal/pkg/apperr"
)

func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func registerUser(t *testing.T, auth AuthService, prefix string) uuid.UUID {
	t.Helper()
	userID, err := auth.Register(context.Background(), uniqueEmail(prefix), "secret123", "Ada")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return userID
}

func TestGetProfileDefaults(t *testing.T) {
	auth, profile, _ := newTestServices(t, 7*24*time.Hour)
	ctx := context.Background()
	userID := registerUser(t, auth, "defaults")

	view, err := profile.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if view.Track != "" || view.SkillLevel != "beginner" || view.AssessmentCompleted || view.TotalPoints != 0 {
		t.Fatalf("unexpected defaults: %+v", view)
	}
	if view.CompletedModules == nil || len(view.CompletedModules) != 0 {
		t.Fatalf("completedModules should be an empty list: %+v", view.CompletedModules)
	}
	if view.Achievements == nil || len(view.Achievements) != 0 {
		t.Fatalf("achievements should be an empty list: %+v", view.Achievements)
	}
	if view.CurrentPath != nil {
		t.Fatalf("currentPath should be null for a fresh user: %+v", view.CurrentPath)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	_, profile, _ := newTestServices(t, 7*24*time.Hour)

	if _, err := profile.GetProfile(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestUpdateProfileSparse(t *testing.T) {
	auth, profile, _ := newTestServices(t, 7*24*time.Hour)
	ctx := context.Background()
	userID := registerUser(t, auth, "sparse")

	if _, err := profile.UpdateProfile(ctx, userID, ProfilePatch{
		Track:      strPtr("backend"),
		SkillLevel: strPtr("intermediate"),
	}); err != nil {
		t.Fatalf("UpdateProfile (seed): %v", err)
	}
	before, err := profile.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	view, err := profile.UpdateProfile(ctx, userID, ProfilePatch{TotalPoints: intPtr(50)})
	if err != nil {
		t.Fatalf("UpdateProfile (points only): %v", err)
	}

	if view.TotalPoints != 50 {
		t.Fatalf("totalPoints not applied: %+v", view)
	}
	if view.Track != "backend" || view.SkillLevel != "intermediate" {
		t.Fatalf("sparse update touched unrelated fields: %+v", view)
	}
	if !view.UpdatedAt.After(before.UpdatedAt) {
		t.Fatalf("updatedAt not refreshed: %v vs %v", view.UpdatedAt, before.UpdatedAt)
	}
}

func TestUpdateProfileReplacesLists(t *testing.T) {
	auth, profile, _ := newTestServices(t, 7*24*time.Hour)
	ctx := context.Background()
	userID := registerUser(t, auth, "lists")

	if _, err := profile.UpdateProfile(ctx, userID, ProfilePatch{
		CompletedModules: &[]string{"mod-1", "mod-2"},
		Achievements:     &[]string{"first-steps"},
	}); err != nil {
		t.Fatalf("UpdateProfile (seed): %v", err)
	}

	// Lists replace outright; the caller sends the full desired value.
	view, err := profile.UpdateProfile(ctx, userID, ProfilePatch{
		CompletedModules: &[]string{"mod-3"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile (replace): %v", err)
	}
	if len(view.CompletedModules) != 1 || view.CompletedModules[0] != "mod-3" {
		t.Fatalf("completedModules not replaced: %+v", view.CompletedModules)
	}
	if len(view.Achievements) != 1 || view.Achievements[0] != "first-steps" {
		t.Fatalf("achievements should be untouched: %+v", view.Achievements)
	}
}

func TestUpdateProfilePathUpsert(t *testing.T) {
	auth, profile, db := newTestServices(t, 7*24*time.Hour)
	ctx := context.Background()
	userID := registerUser(t, auth, "path")

	first, err := profile.UpdateProfile(ctx, userID, ProfilePatch{
		CurrentPath: &PathPatch{
			Track:             "backend",
			Modules:           json.RawMessage(`[{"id":"mod-1"},{"id":"mod-2"}]`),
			Progress:          floatPtr(0.4),
			AdaptationHistory: json.RawMessage(`[{"event":"difficulty_changed"}]`),
		},
	})
	if err != nil {
		t.Fatalf("UpdateProfile (create path): %v", err)
	}
	if first.CurrentPath == nil || first.CurrentPath.Track != "backend" || first.CurrentPath.Progress != 0.4 {
		t.Fatalf("path not created: %+v", first.CurrentPath)
	}

	second, err := profile.UpdateProfile(ctx, userID, ProfilePatch{
		CurrentPath: &PathPatch{
			Track:   "backend",
			Modules: json.RawMessage(`[{"id":"mod-3"}]`),
		},
	})
	if err != nil {
		t.Fatalf("UpdateProfile (update path): %v", err)
	}
	if second.CurrentPath.ID != first.CurrentPath.ID {
		t.Fatalf("path row replaced instead of updated: %s vs %s", second.CurrentPath.ID, first.CurrentPath.ID)
	}

	var count int64
	if err := db.Model(&types.LearningPath{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count paths: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one path record, got %d", count)
	}

	// Path sub-fields are a full overwrite: omitted progress and history fall
	// back to defaults, they do not keep prior values.
	if second.CurrentPath.Progress != 0 {
		t.Fatalf("progress should reset to 0 when omitted: %v", second.CurrentPath.Progress)
	}
	if string(second.CurrentPath.AdaptationHistory) != "[]" {
		t.Fatalf("adaptationHistory should reset to empty when omitted: %s", second.CurrentPath.AdaptationHistory)
	}
}

func TestUpdateProfilePathOnlyRefreshesUser(t *testing.T) {
	auth, profile, _ := newTestServices(t, 7*24*time.Hour)
	ctx := context.Background()
	userID := registerUser(t, auth, "fence")

	before, err := profile.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	view, err := profile.UpdateProfile(ctx, userID, ProfilePatch{
		CurrentPath: &PathPatch{
			Track:   "cloud",
			Modules: json.RawMessage(`[{"id":"mod-1"}]`),
		},
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if !view.UpdatedAt.After(before.UpdatedAt) {
		t.Fatalf("updatedAt must refresh on a path-only change: %v vs %v", view.UpdatedAt, before.UpdatedAt)
	}
}

func TestUpdateProfilePathValidation(t *testing.T) {
	auth, profile, _ := newTestServices(t, 7*24*time.Hour)
	ctx := context.Background()
	userID := registerUser(t, auth, "pathval")

	_, err := profile.UpdateProfile(ctx, userID, ProfilePatch{
		CurrentPath: &PathPatch{Modules: json.RawMessage(`[]`)},
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for missing track, got %v", err)
	}
}

func TestUpdateProfileNotFound(t *testing.T) {
	_, profile, _ := newTestServices(t, 7*24*time.Hour)

	_, err := profile.UpdateProfile(context.Background(), uuid.New(), ProfilePatch{TotalPoints: intPtr(1)})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	auth, profile, _ := newTestServices(t, 7*24*time.Hour)
	ctx := context.Background()
	email := uniqueEmail("roundtrip")

	if _, err := auth.Register(ctx, email, "secret123", "Grace"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, user, err := auth.Login(ctx, email, "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := profile.UpdateProfile(ctx, user.ID, ProfilePatch{
		Track:               strPtr("data"),
		AssessmentCompleted: boolPtr(true),
		TotalPoints:         intPtr(120),
		CurrentPath: &PathPatch{
			Track:    "data",
			Modules:  json.RawMessage(`[{"id":"sql-basics"},{"id":"pandas"}]`),
			Progress: floatPtr(0.5),
		},
	}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	view, err := profile.GetProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if view.Track != "data" || !view.AssessmentCompleted || view.TotalPoints != 120 {
		t.Fatalf("user fields not reflected: %+v", view)
	}
	if view.CurrentPath == nil || view.CurrentPath.Track != "data" || view.CurrentPath.Progress != 0.5 {
		t.Fatalf("path not reflected: %+v", view.CurrentPath)
	}
	var modules []map[string]string
	if err := json.Unmarshal(view.CurrentPath.Modules, &modules); err != nil {
		t.Fatalf("modules not valid JSON: %v", err)
	}
	if len(modules) != 2 || modules[0]["id"] != "sql-basics" {
		t.Fatalf("modules not stored as provided: %+v", modules)
	}
	if view.CurrentPath.UserID != user.ID.String() {
		t.Fatalf("path userId mismatch: %s", view.CurrentPath.UserID)
	}
}
