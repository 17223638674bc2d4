package model

import (
	"time"

	"github.com/google/uuid"
)

type CommentModel struct {
	CommentID         uuid.UUID `gorm:"column:comment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"comment_id"`
	CommentStudentID  uuid.UUID `gorm:"column:comment_student_id;type:uuid;not null;index" json:"comment_student_id"`
	CommentQuestionID uuid.UUID `gorm:"column:comment_question_id;type:uuid;not null;index" json:"comment_question_id"`
	CommentText       string    `gorm:"column:comment_text;type:text;not null" json:"comment_text"`

	CommentCreatedAt time.Time `gorm:"column:comment_created_at;not null;autoCreateTime" json:"comment_created_at"`
	CommentUpdatedAt time.Time `gorm:"column:comment_updated_at;not null;autoUpdateTime" json:"comment_updated_at"`
}

func (CommentModel) TableName() string { return "comments" }
