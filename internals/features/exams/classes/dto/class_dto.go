package dto

import (
	"strings"

	classModel "universe_backend/internals/features/exams/classes/model"
)

type CreateClassRequest struct {
	ClassName string `json:"className" validate:"required,min=2,max=100"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
}

func (r CreateClassRequest) ToModel() classModel.ClassModel {
	return classModel.ClassModel{ClassName: r.ClassName}
}

type UpdateClassRequest struct {
	ClassName *string `json:"className" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateClassRequest) Normalize() {
	if r.ClassName != nil {
		s := strings.TrimSpace(*r.ClassName)
		r.ClassName = &s
	}
}

func (r UpdateClassRequest) HasChanges() bool {
	return r.ClassName != nil
}

func (r UpdateClassRequest) Apply(m *classModel.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
}
