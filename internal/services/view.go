package services

import (
	"encoding/json"
	"time"

	types "github.com/yungbote/compass-backend/internal/domain"
)

// ProfileView is the externally visible snapshot of a user and their current
// learning path. Field names are the client contract; building the view here
// keeps serialization of the stored shape in one place.
type ProfileView struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Track               string    `json:"track"`
	AssessmentCompleted bool      `json:"assessmentCompleted"`
	SkillLevel          string    `json:"skillLevel"`
	CompletedModules    []string  `json:"completedModules"`
	Achievements        []string  `json:"achievements"`
	TotalPoints         int       `json:"totalPoints"`
	CurrentPath         *PathView `json:"currentPath"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type PathView struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Track             string          `json:"track"`
	Modules           json.RawMessage `json:"modules"`
	Progress          float64         `json:"progress"`
	AdaptationHistory json.RawMessage `json:"adaptationHistory"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func NewProfileView(u *types.User, path *types.LearningPath) *ProfileView {
	view := &ProfileView{
		ID:                  u.ID.String(),
		Email:               u.Email,
		Name:                u.Name,
		Track:               u.Track,
		AssessmentCompleted: u.AssessmentCompleted,
		SkillLevel:          u.SkillLevel,
		CompletedModules:    emptyIfNil([]string(u.CompletedModules)),
		Achievements:        emptyIfNil([]string(u.Achievements)),
		TotalPoints:         u.TotalPoints,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
	if path != nil {
		view.CurrentPath = &PathView{
			ID:                path.ID.String(),
			UserID:            path.UserID.String(),
			Track:             path.Track,
			Modules:           rawOrEmptyArray(path.Modules),
			Progress:          path.Progress,
			AdaptationHistory: rawOrEmptyArray(path.AdaptationHistory),
			CreatedAt:         path.CreatedAt,
		}
	}
	return view
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func rawOrEmptyArray(b []byte) json.RawMessage {
	if len(b) == 0 {
		return json.RawMessage("[]")
	}
	return json.RawMessage(b)
}
