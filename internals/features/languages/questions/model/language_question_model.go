package model

import (
	"time"

	"github.com/google/uuid"
)

// The five language-question variants share one table, discriminated by
// kind. empty/mean carry the word + four-answer block; listen, read&talk
// and ranking are text-only.
const (
	KindEmpty    = "emptes"
	KindMean     = "means"
	KindListen   = "listens"
	KindReadTalk = "read_talk"
	KindRanking  = "rank"
)

type LanguageQuestionModel struct {
	LqID      uuid.UUID `gorm:"column:lq_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lq_id"`
	LqLevelID uuid.UUID `gorm:"column:lq_level_id;type:uuid;not null;index" json:"lq_level_id"`
	LqKind    string    `gorm:"column:lq_kind;type:varchar(20);not null;index" json:"lq_kind"`
	LqText    string    `gorm:"column:lq_text;type:text;not null" json:"lq_text"`

	LqWord         *string `gorm:"column:lq_word;type:varchar(100)" json:"lq_word,omitempty"`
	LqCorrect      *string `gorm:"column:lq_correct;type:varchar(100)" json:"lq_correct,omitempty"`
	LqFirstAnswer  *string `gorm:"column:lq_first_answer;type:varchar(100)" json:"lq_first_answer,omitempty"`
	LqSecondAnswer *string `gorm:"column:lq_second_answer;type:varchar(100)" json:"lq_second_answer,omitempty"`
	LqThirdAnswer  *string `gorm:"column:lq_third_answer;type:varchar(100)" json:"lq_third_answer,omitempty"`
	LqForthAnswer  *string `gorm:"column:lq_forth_answer;type:varchar(100)" json:"lq_forth_answer,omitempty"`

	LqCreatedAt time.Time `gorm:"column:lq_created_at;not null;autoCreateTime" json:"lq_created_at"`
	LqUpdatedAt time.Time `gorm:"column:lq_updated_at;not null;autoUpdateTime" json:"lq_updated_at"`
}

func (LanguageQuestionModel) TableName() string { return "language_questions" }

// HasAnswerBlock reports whether the kind carries word/answer fields.
func HasAnswerBlock(kind string) bool {
	return kind == KindEmpty || kind == KindMean
}
