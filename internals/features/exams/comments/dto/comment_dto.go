package dto

import (
	"strings"

	"github.com/google/uuid"

	commentModel "universe_backend/internals/features/exams/comments/model"
)

type CreateCommentRequest struct {
	Question string `json:"question" validate:"required,uuid"`
	Text     string `json:"text" validate:"required,min=1,max=500"`
}

func (r *CreateCommentRequest) Normalize() {
	r.Question = strings.TrimSpace(r.Question)
	r.Text = strings.TrimSpace(r.Text)
}

func (r CreateCommentRequest) ToModel(studentID uuid.UUID) commentModel.CommentModel {
	return commentModel.CommentModel{
		CommentStudentID:  studentID,
		CommentQuestionID: uuid.MustParse(r.Question),
		CommentText:       r.Text,
	}
}

type UpdateCommentRequest struct {
	Text *string `json:"text" validate:"omitempty,min=1,max=500"`
}

func (r *UpdateCommentRequest) Normalize() {
	if r.Text != nil {
		s := strings.TrimSpace(*r.Text)
		r.Text = &s
	}
}

func (r UpdateCommentRequest) HasChanges() bool { return r.Text != nil }

func (r UpdateCommentRequest) Apply(m *commentModel.CommentModel) {
	if r.Text != nil {
		m.CommentText = *r.Text
	}
}
