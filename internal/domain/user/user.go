package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultSkillLevel is assigned at registration; the client adjusts it after
// the assessment.
const DefaultSkillLevel = "beginner"

type User struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Email               string                      `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password            string                      `gorm:"not null;column:password" json:"-"`
	Name                string                      `gorm:"not null;column:name" json:"name"`
	Track               string                      `gorm:"column:track" json:"track"`
	AssessmentCompleted bool                        `gorm:"column:assessment_completed;not null" json:"assessment_completed"`
	SkillLevel          string                      `gorm:"column:skill_level;not null" json:"skill_level"`
	CompletedModules    datatypes.JSONSlice[string] `gorm:"column:completed_modules;type:jsonb" json:"completed_modules"`
	Achievements        datatypes.JSONSlice[string] `gorm:"column:achievements;type:jsonb" json:"achievements"`
	TotalPoints         int                         `gorm:"column:total_points;not null" json:"total_points"`
	CreatedAt           time.Time                   `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time                   `gorm:"not null" json:"updated_at"`
	DeletedAt           gorm.DeletedAt              `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }
