package model

import (
	"time"

	"github.com/google/uuid"
)

type LanguageModel struct {
	LanguageID   uuid.UUID `gorm:"column:language_id;type:uuid;default:gen_random_uuid();primaryKey" json:"language_id"`
	LanguageName string    `gorm:"column:language_name;type:varchar(100);not null" json:"language_name"`

	LanguageCreatedAt time.Time `gorm:"column:language_created_at;not null;autoCreateTime" json:"language_created_at"`
	LanguageUpdatedAt time.Time `gorm:"column:language_updated_at;not null;autoUpdateTime" json:"language_updated_at"`
}

func (LanguageModel) TableName() string { return "languages" }
