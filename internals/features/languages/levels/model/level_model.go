package model

import (
	"time"

	"github.com/google/uuid"
)

// (language, level number) pairs are duplicate-checked on create.
type LevelModel struct {
	LevelID         uuid.UUID `gorm:"column:level_id;type:uuid;default:gen_random_uuid();primaryKey" json:"level_id"`
	LevelLanguageID uuid.UUID `gorm:"column:level_language_id;type:uuid;not null;index" json:"level_language_id"`
	LevelNumber     int       `gorm:"column:level_number;not null" json:"level_number"`
	LevelAvailable  bool      `gorm:"column:level_available;not null;default:false" json:"level_available"`

	LevelCreatedAt time.Time `gorm:"column:level_created_at;not null;autoCreateTime" json:"level_created_at"`
	LevelUpdatedAt time.Time `gorm:"column:level_updated_at;not null;autoUpdateTime" json:"level_updated_at"`
}

func (LevelModel) TableName() string { return "levels" }
