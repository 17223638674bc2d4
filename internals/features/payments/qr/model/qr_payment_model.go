package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCourse = "course"
	TypeUnit   = "unit"
	TypeLevel  = "level"
)

func ValidType(t string) bool {
	return t == TypeCourse || t == TypeUnit || t == TypeLevel
}

// QrPaymentModel is a single-use purchase token: once qr_used flips to
// true the code is permanently unredeemable.
type QrPaymentModel struct {
	QrID         uuid.UUID `gorm:"column:qr_id;type:uuid;default:gen_random_uuid();primaryKey" json:"qr_id"`
	QrType       string    `gorm:"column:qr_type;type:varchar(10);not null" json:"qr_type"`
	QrEntityID   uuid.UUID `gorm:"column:qr_entity_id;type:uuid;not null;index" json:"qr_entity_id"`
	QrUniqueCode string    `gorm:"column:qr_unique_code;type:varchar(64);not null;uniqueIndex" json:"qr_unique_code"`
	QrUsed       bool      `gorm:"column:qr_used;not null;default:false" json:"qr_used"`

	QrCreatedAt time.Time `gorm:"column:qr_created_at;not null;autoCreateTime" json:"qr_created_at"`
	QrUpdatedAt time.Time `gorm:"column:qr_updated_at;not null;autoUpdateTime" json:"qr_updated_at"`
}

func (QrPaymentModel) TableName() string { return "qr_payments" }
