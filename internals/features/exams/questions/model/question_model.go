package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DifficultyHard   = "hard"
	DifficultyNormal = "normal"
	DifficultyEasy   = "easy"

	TypeSingle   = "single"
	TypeMultiple = "multiple"

	ExplanationText  = "text"
	ExplanationVideo = "video"
	ExplanationImage = "image"
)

// Explanation, Request and Answer are embedded value objects persisted as
// JSONB; they have no identity or lifecycle of their own.
type Explanation struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type Answer struct {
	AnswerText string `json:"answerText"`
	IsCorrect  bool   `json:"isCorrect"`
}

type Request struct {
	RequestText string   `json:"requestText"`
	Answers     []Answer `json:"answers"`
}

type QuestionModel struct {
	QuestionID         uuid.UUID      `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionUnitID     uuid.UUID      `gorm:"column:question_unit_id;type:uuid;not null;index" json:"question_unit_id"`
	QuestionTeacherID  uuid.UUID      `gorm:"column:question_teacher_id;type:uuid;not null;index" json:"question_teacher_id"`
	QuestionText       string         `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionDifficulty string         `gorm:"column:question_difficulty;type:varchar(10);not null" json:"question_difficulty"`
	QuestionType       string         `gorm:"column:question_type;type:varchar(10);not null" json:"question_type"`
	QuestionPhoto      datatypes.JSON `gorm:"column:question_photo;type:jsonb" json:"question_photo"`
	QuestionExplanation datatypes.JSON `gorm:"column:question_explanation;type:jsonb;not null" json:"question_explanation"`
	QuestionRequests   datatypes.JSON `gorm:"column:question_requests;type:jsonb;not null" json:"question_requests"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;not null;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;not null;autoUpdateTime" json:"question_updated_at"`
}

func (QuestionModel) TableName() string { return "questions" }
