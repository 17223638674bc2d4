package dto

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	questionModel "universe_backend/internals/features/exams/questions/model"
)

// FavoriteToggleRequest flips one question in the caller's favorites set.
type FavoriteToggleRequest struct {
	Question string `json:"question" validate:"required,uuid"`
}

func (r *FavoriteToggleRequest) Normalize() {
	r.Question = strings.TrimSpace(r.Question)
}

type AnswerPayload struct {
	AnswerText string `json:"answerText" validate:"required,max=300"`
	IsCorrect  bool   `json:"isCorrect"`
}

type RequestPayload struct {
	RequestText string          `json:"requestText" validate:"required,max=500"`
	Answers     []AnswerPayload `json:"answers" validate:"required,len=4,dive"`
}

type ExplanationPayload struct {
	Type    string `json:"type" validate:"required,oneof=text video image"`
	Content string `json:"content"`
}

type CreateQuestionRequest struct {
	Unit        string             `json:"unit" validate:"required,uuid"`
	Teacher     string             `json:"teacher" validate:"omitempty,uuid"`
	Text        string             `json:"text" validate:"required,max=1000"`
	Difficulty  string             `json:"difficulty" validate:"required,oneof=hard normal easy"`
	Type        string             `json:"type" validate:"required,oneof=single multiple"`
	Explanation ExplanationPayload `json:"explanation" validate:"required"`
	Requests    []RequestPayload   `json:"requests" validate:"required,min=1,dive"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.Unit = strings.TrimSpace(r.Unit)
	r.Teacher = strings.TrimSpace(r.Teacher)
	r.Text = strings.TrimSpace(r.Text)
	r.Difficulty = strings.TrimSpace(r.Difficulty)
	r.Type = strings.TrimSpace(r.Type)
	r.Explanation.Type = strings.TrimSpace(r.Explanation.Type)
	r.Explanation.Content = strings.TrimSpace(r.Explanation.Content)
	for i := range r.Requests {
		r.Requests[i].RequestText = strings.TrimSpace(r.Requests[i].RequestText)
		for j := range r.Requests[i].Answers {
			r.Requests[i].Answers[j].AnswerText = strings.TrimSpace(r.Requests[i].Answers[j].AnswerText)
		}
	}
}

// Validate enforces the cross-field rules that struct tags cannot express.
// hasExplanationImage reports whether an explanation image file accompanied
// the request; content is only optional when that file carries it instead.
func (r CreateQuestionRequest) Validate(hasExplanationImage bool) error {
	if r.Explanation.Type == questionModel.ExplanationImage {
		if !hasExplanationImage {
			return errors.New("Explanation image is required when explanation type is 'image'.")
		}
	} else if r.Explanation.Content == "" {
		return errors.New("Explanation content is required.")
	}
	for _, req := range r.Requests {
		correct := 0
		for _, a := range req.Answers {
			if a.IsCorrect {
				correct++
			}
		}
		switch r.Type {
		case questionModel.TypeSingle:
			if correct != 1 {
				return errors.New("Single choice questions must have exactly one correct answer.")
			}
		case questionModel.TypeMultiple:
			if correct < 1 {
				return errors.New("Multiple choice questions must have at least one correct answer.")
			}
		}
	}
	return nil
}

func (r CreateQuestionRequest) ToModel(teacherID uuid.UUID) (questionModel.QuestionModel, error) {
	explanation, err := sonic.Marshal(questionModel.Explanation{
		Type:    r.Explanation.Type,
		Content: r.Explanation.Content,
	})
	if err != nil {
		return questionModel.QuestionModel{}, err
	}

	requests := make([]questionModel.Request, 0, len(r.Requests))
	for _, req := range r.Requests {
		answers := make([]questionModel.Answer, 0, len(req.Answers))
		for _, a := range req.Answers {
			answers = append(answers, questionModel.Answer{AnswerText: a.AnswerText, IsCorrect: a.IsCorrect})
		}
		requests = append(requests, questionModel.Request{RequestText: req.RequestText, Answers: answers})
	}
	requestsJSON, err := sonic.Marshal(requests)
	if err != nil {
		return questionModel.QuestionModel{}, err
	}

	return questionModel.QuestionModel{
		QuestionUnitID:      uuid.MustParse(r.Unit),
		QuestionTeacherID:   teacherID,
		QuestionText:        r.Text,
		QuestionDifficulty:  r.Difficulty,
		QuestionType:        r.Type,
		QuestionExplanation: datatypes.JSON(explanation),
		QuestionRequests:    datatypes.JSON(requestsJSON),
	}, nil
}

type UpdateQuestionRequest struct {
	Text        *string             `json:"text" validate:"omitempty,max=1000"`
	Difficulty  *string             `json:"difficulty" validate:"omitempty,oneof=hard normal easy"`
	Type        *string             `json:"type" validate:"omitempty,oneof=single multiple"`
	Explanation *ExplanationPayload `json:"explanation"`
	Requests    []RequestPayload    `json:"requests" validate:"omitempty,min=1,dive"`
}

func (r *UpdateQuestionRequest) Normalize() {
	if r.Text != nil {
		s := strings.TrimSpace(*r.Text)
		r.Text = &s
	}
	if r.Difficulty != nil {
		s := strings.TrimSpace(*r.Difficulty)
		r.Difficulty = &s
	}
	if r.Type != nil {
		s := strings.TrimSpace(*r.Type)
		r.Type = &s
	}
	if r.Explanation != nil {
		r.Explanation.Type = strings.TrimSpace(r.Explanation.Type)
		r.Explanation.Content = strings.TrimSpace(r.Explanation.Content)
	}
	for i := range r.Requests {
		r.Requests[i].RequestText = strings.TrimSpace(r.Requests[i].RequestText)
		for j := range r.Requests[i].Answers {
			r.Requests[i].Answers[j].AnswerText = strings.TrimSpace(r.Requests[i].Answers[j].AnswerText)
		}
	}
}

func (r UpdateQuestionRequest) HasChanges() bool {
	return r.Text != nil || r.Difficulty != nil || r.Type != nil ||
		r.Explanation != nil || len(r.Requests) > 0
}

// Validate mirrors the create rules against the question type after the
// update has been merged, so type and requests stay consistent.
func (r UpdateQuestionRequest) Validate(effectiveType string, hasExplanationImage bool) error {
	if r.Explanation != nil {
		if r.Explanation.Type == questionModel.ExplanationImage {
			if !hasExplanationImage {
				return errors.New("Explanation image is required when explanation type is 'image'.")
			}
		} else if r.Explanation.Content == "" {
			return errors.New("Explanation content is required.")
		}
	}
	for _, req := range r.Requests {
		correct := 0
		for _, a := range req.Answers {
			if a.IsCorrect {
				correct++
			}
		}
		switch effectiveType {
		case questionModel.TypeSingle:
			if correct != 1 {
				return errors.New("Single choice questions must have exactly one correct answer.")
			}
		case questionModel.TypeMultiple:
			if correct < 1 {
				return errors.New("Multiple choice questions must have at least one correct answer.")
			}
		}
	}
	return nil
}

func (r UpdateQuestionRequest) Apply(m *questionModel.QuestionModel) error {
	if r.Text != nil {
		m.QuestionText = *r.Text
	}
	if r.Difficulty != nil {
		m.QuestionDifficulty = *r.Difficulty
	}
	if r.Type != nil {
		m.QuestionType = *r.Type
	}
	if r.Explanation != nil {
		explanation, err := sonic.Marshal(questionModel.Explanation{
			Type:    r.Explanation.Type,
			Content: r.Explanation.Content,
		})
		if err != nil {
			return err
		}
		m.QuestionExplanation = datatypes.JSON(explanation)
	}
	if len(r.Requests) > 0 {
		requests := make([]questionModel.Request, 0, len(r.Requests))
		for _, req := range r.Requests {
			answers := make([]questionModel.Answer, 0, len(req.Answers))
			for _, a := range req.Answers {
				answers = append(answers, questionModel.Answer{AnswerText: a.AnswerText, IsCorrect: a.IsCorrect})
			}
			requests = append(requests, questionModel.Request{RequestText: req.RequestText, Answers: answers})
		}
		requestsJSON, err := sonic.Marshal(requests)
		if err != nil {
			return err
		}
		m.QuestionRequests = datatypes.JSON(requestsJSON)
	}
	return nil
}
