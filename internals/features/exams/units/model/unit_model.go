package model

import (
	"time"

	"github.com/google/uuid"
)

type UnitModel struct {
	UnitID        uuid.UUID `gorm:"column:unit_id;type:uuid;default:gen_random_uuid();primaryKey" json:"unit_id"`
	UnitName      string    `gorm:"column:unit_name;type:varchar(100);not null" json:"unit_name"`
	UnitAvailable bool      `gorm:"column:unit_available;not null;default:false" json:"unit_available"`
	UnitSubjectID uuid.UUID `gorm:"column:unit_subject_id;type:uuid;not null;index" json:"unit_subject_id"`

	UnitCreatedAt time.Time `gorm:"column:unit_created_at;not null;autoCreateTime" json:"unit_created_at"`
	UnitUpdatedAt time.Time `gorm:"column:unit_updated_at;not null;autoUpdateTime" json:"unit_updated_at"`
}

func (UnitModel) TableName() string { return "units" }
