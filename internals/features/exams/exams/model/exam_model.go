package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ExamModel is immutable after creation: no update or delete API exists.
type ExamModel struct {
	ExamID                uuid.UUID      `gorm:"column:exam_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_id"`
	ExamUnitIDs           pq.StringArray `gorm:"column:exam_unit_ids;type:text[];not null" json:"exam_unit_ids"`
	ExamTeacherID         uuid.UUID      `gorm:"column:exam_teacher_id;type:uuid;not null;index" json:"exam_teacher_id"`
	ExamDifficulty        string         `gorm:"column:exam_difficulty;type:varchar(10);not null" json:"exam_difficulty"`
	ExamNumberOfQuestions int            `gorm:"column:exam_number_of_questions;not null" json:"exam_number_of_questions"`
	ExamQuestionIDs       pq.StringArray `gorm:"column:exam_question_ids;type:text[];not null" json:"exam_question_ids"`
	ExamCreatedBy         uuid.UUID      `gorm:"column:exam_created_by;type:uuid;not null;index" json:"exam_created_by"`

	ExamCreatedAt time.Time `gorm:"column:exam_created_at;not null;autoCreateTime" json:"exam_created_at"`
}

func (ExamModel) TableName() string { return "exams" }
