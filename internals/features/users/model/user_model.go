package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel holds the dashboard identities (admin / superAdmin / sales).
type UserModel struct {
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName        string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserPhoneNumber string    `gorm:"column:user_phone_number;type:varchar(10);not null;uniqueIndex" json:"user_phone_number"`
	UserPassword    string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserGender      string    `gorm:"column:user_gender;type:varchar(10);not null" json:"user_gender"`
	UserAge         int       `gorm:"column:user_age;not null" json:"user_age"`
	UserRole        string    `gorm:"column:user_role;type:varchar(20);not null;default:'sales'" json:"user_role"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
