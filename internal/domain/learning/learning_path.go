package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LearningPath is the single active path for a user. The unique index on
// user_id enforces the at-most-one invariant; updates overwrite the row in
// place, with AdaptationHistory as the only record of prior adjustments.
// Modules and AdaptationHistory are opaque to this layer and stored as
// provided.
type LearningPath struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Track             string         `gorm:"column:track;not null" json:"track"`
	Modules           datatypes.JSON `gorm:"column:modules;type:jsonb" json:"modules"`
	Progress          float64        `gorm:"column:progress;not null" json:"progress"`
	AdaptationHistory datatypes.JSON `gorm:"column:adaptation_history;type:jsonb" json:"adaptation_history"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LearningPath) TableName() string { return "learning_path" }
