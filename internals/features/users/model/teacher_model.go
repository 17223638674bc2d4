package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NOTE:
// - teacher_subject_id is nullable: deleting a subject clears it rather than
//   deleting the teacher.
// - favorites are a text[] of question uuids so the toggle can be a single
//   array_append/array_remove statement.
type TeacherModel struct {
	TeacherID          uuid.UUID  `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherUserName    string     `gorm:"column:teacher_user_name;type:varchar(100);not null" json:"teacher_user_name"`
	TeacherPhoneNumber string     `gorm:"column:teacher_phone_number;type:varchar(10);not null;uniqueIndex" json:"teacher_phone_number"`
	TeacherPassword    string     `gorm:"column:teacher_password;type:text;not null" json:"-"`
	TeacherGender      string     `gorm:"column:teacher_gender;type:varchar(10);not null" json:"teacher_gender"`
	TeacherAge         int        `gorm:"column:teacher_age;not null" json:"teacher_age"`
	TeacherRole        string     `gorm:"column:teacher_role;type:varchar(20);not null;default:'teacher'" json:"teacher_role"`
	TeacherSubjectID   *uuid.UUID `gorm:"column:teacher_subject_id;type:uuid;index" json:"teacher_subject_id,omitempty"`

	TeacherFavoriteQuestionIDs pq.StringArray `gorm:"column:teacher_favorite_question_ids;type:text[];not null;default:'{}'" json:"teacher_favorite_question_ids"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
