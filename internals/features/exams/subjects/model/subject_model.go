package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	SubjectID      uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectName    string    `gorm:"column:subject_name;type:varchar(100);not null" json:"subject_name"`
	SubjectClassID uuid.UUID `gorm:"column:subject_class_id;type:uuid;not null;index" json:"subject_class_id"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }
