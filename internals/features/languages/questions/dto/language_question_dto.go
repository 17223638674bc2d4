package dto

import (
	"strings"

	"github.com/google/uuid"

	lqModel "universe_backend/internals/features/languages/questions/model"
)

// CreateWordQuestionRequest serves the empty and mean variants: a sentence
// plus a word, a correct translation and four answer choices.
type CreateWordQuestionRequest struct {
	Level        string `json:"level" validate:"required,uuid"`
	Text         string `json:"text" validate:"required,min=1,max=500"`
	Word         string `json:"word" validate:"required,min=1,max=100"`
	Correct      string `json:"correct" validate:"required,min=1,max=100"`
	FirstAnswer  string `json:"firstAnswer" validate:"required,min=1,max=100"`
	SecondAnswer string `json:"secondAnswer" validate:"required,min=1,max=100"`
	ThirdAnswer  string `json:"thirdAnswer" validate:"required,min=1,max=100"`
	ForthAnswer  string `json:"forthAnswer" validate:"required,min=1,max=100"`
}

func (r *CreateWordQuestionRequest) Normalize() {
	r.Level = strings.TrimSpace(r.Level)
	r.Text = strings.TrimSpace(r.Text)
	r.Word = strings.TrimSpace(r.Word)
	r.Correct = strings.TrimSpace(r.Correct)
	r.FirstAnswer = strings.TrimSpace(r.FirstAnswer)
	r.SecondAnswer = strings.TrimSpace(r.SecondAnswer)
	r.ThirdAnswer = strings.TrimSpace(r.ThirdAnswer)
	r.ForthAnswer = strings.TrimSpace(r.ForthAnswer)
}

func (r CreateWordQuestionRequest) ToModel(kind string) lqModel.LanguageQuestionModel {
	word, correct := r.Word, r.Correct
	first, second, third, forth := r.FirstAnswer, r.SecondAnswer, r.ThirdAnswer, r.ForthAnswer
	return lqModel.LanguageQuestionModel{
		LqLevelID:      uuid.MustParse(r.Level),
		LqKind:         kind,
		LqText:         r.Text,
		LqWord:         &word,
		LqCorrect:      &correct,
		LqFirstAnswer:  &first,
		LqSecondAnswer: &second,
		LqThirdAnswer:  &third,
		LqForthAnswer:  &forth,
	}
}

// CreateTextQuestionRequest serves the listen, read&talk and ranking
// variants, which carry only the sentence.
type CreateTextQuestionRequest struct {
	Level string `json:"level" validate:"required,uuid"`
	Text  string `json:"text" validate:"required,min=1,max=500"`
}

func (r *CreateTextQuestionRequest) Normalize() {
	r.Level = strings.TrimSpace(r.Level)
	r.Text = strings.TrimSpace(r.Text)
}

func (r CreateTextQuestionRequest) ToModel(kind string) lqModel.LanguageQuestionModel {
	return lqModel.LanguageQuestionModel{
		LqLevelID: uuid.MustParse(r.Level),
		LqKind:    kind,
		LqText:    r.Text,
	}
}

type UpdateWordQuestionRequest struct {
	Text         *string `json:"text" validate:"omitempty,min=1,max=500"`
	Word         *string `json:"word" validate:"omitempty,min=1,max=100"`
	Correct      *string `json:"correct" validate:"omitempty,min=1,max=100"`
	FirstAnswer  *string `json:"firstAnswer" validate:"omitempty,min=1,max=100"`
	SecondAnswer *string `json:"secondAnswer" validate:"omitempty,min=1,max=100"`
	ThirdAnswer  *string `json:"thirdAnswer" validate:"omitempty,min=1,max=100"`
	ForthAnswer  *string `json:"forthAnswer" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateWordQuestionRequest) Normalize() {
	trim := func(p **string) {
		if *p != nil {
			s := strings.TrimSpace(**p)
			*p = &s
		}
	}
	trim(&r.Text)
	trim(&r.Word)
	trim(&r.Correct)
	trim(&r.FirstAnswer)
	trim(&r.SecondAnswer)
	trim(&r.ThirdAnswer)
	trim(&r.ForthAnswer)
}

func (r UpdateWordQuestionRequest) HasChanges() bool {
	return r.Text != nil || r.Word != nil || r.Correct != nil ||
		r.FirstAnswer != nil || r.SecondAnswer != nil ||
		r.ThirdAnswer != nil || r.ForthAnswer != nil
}

func (r UpdateWordQuestionRequest) Apply(m *lqModel.LanguageQuestionModel) {
	if r.Text != nil {
		m.LqText = *r.Text
	}
	if r.Word != nil {
		m.LqWord = r.Word
	}
	if r.Correct != nil {
		m.LqCorrect = r.Correct
	}
	if r.FirstAnswer != nil {
		m.LqFirstAnswer = r.FirstAnswer
	}
	if r.SecondAnswer != nil {
		m.LqSecondAnswer = r.SecondAnswer
	}
	if r.ThirdAnswer != nil {
		m.LqThirdAnswer = r.ThirdAnswer
	}
	if r.ForthAnswer != nil {
		m.LqForthAnswer = r.ForthAnswer
	}
}

type UpdateTextQuestionRequest struct {
	Text *string `json:"text" validate:"omitempty,min=1,max=500"`
}

func (r *UpdateTextQuestionRequest) Normalize() {
	if r.Text != nil {
		s := strings.TrimSpace(*r.Text)
		r.Text = &s
	}
}

func (r UpdateTextQuestionRequest) HasChanges() bool { return r.Text != nil }

func (r UpdateTextQuestionRequest) Apply(m *lqModel.LanguageQuestionModel) {
	if r.Text != nil {
		m.LqText = *r.Text
	}
}
