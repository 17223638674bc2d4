package dto

import (
	"strings"

	"github.com/google/uuid"

	subjectModel "universe_backend/internals/features/exams/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectName string `json:"subjectName" validate:"required,min=2,max=100"`
	Class       string `json:"class" validate:"required,uuid"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	r.Class = strings.TrimSpace(r.Class)
}

func (r CreateSubjectRequest) ToModel() subjectModel.SubjectModel {
	return subjectModel.SubjectModel{
		SubjectName:    r.SubjectName,
		SubjectClassID: uuid.MustParse(r.Class),
	}
}

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subjectName" validate:"omitempty,min=2,max=100"`
	Class       *string `json:"class" validate:"omitempty,uuid"`
}

func (r *UpdateSubjectRequest) Normalize() {
	if r.SubjectName != nil {
		s := strings.TrimSpace(*r.SubjectName)
		r.SubjectName = &s
	}
	if r.Class != nil {
		s := strings.TrimSpace(*r.Class)
		r.Class = &s
	}
}

func (r UpdateSubjectRequest) HasChanges() bool {
	return r.SubjectName != nil || r.Class != nil
}

func (r UpdateSubjectRequest) Apply(m *subjectModel.SubjectModel) {
	if r.SubjectName != nil {
		m.SubjectName = *r.SubjectName
	}
	if r.Class != nil {
		m.SubjectClassID = uuid.MustParse(*r.Class)
	}
}
