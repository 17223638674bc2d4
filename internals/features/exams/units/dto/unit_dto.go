package dto

import (
	"strings"

	"github.com/google/uuid"

	unitModel "universe_backend/internals/features/exams/units/model"
)

type CreateUnitRequest struct {
	UnitName  string `json:"unitName" validate:"required,min=2,max=100"`
	Available *bool  `json:"available"`
	Subject   string `json:"subject" validate:"required,uuid"`
}

func (r *CreateUnitRequest) Normalize() {
	r.UnitName = strings.TrimSpace(r.UnitName)
	r.Subject = strings.TrimSpace(r.Subject)
}

func (r CreateUnitRequest) ToModel() unitModel.UnitModel {
	m := unitModel.UnitModel{
		UnitName:      r.UnitName,
		UnitSubjectID: uuid.MustParse(r.Subject),
	}
	if r.Available != nil {
		m.UnitAvailable = *r.Available
	}
	return m
}

type UpdateUnitRequest struct {
	UnitName  *string `json:"unitName" validate:"omitempty,min=2,max=100"`
	Available *bool   `json:"available"`
	Subject   *string `json:"subject" validate:"omitempty,uuid"`
}

func (r *UpdateUnitRequest) Normalize() {
	if r.UnitName != nil {
		s := strings.TrimSpace(*r.UnitName)
		r.UnitName = &s
	}
	if r.Subject != nil {
		s := strings.TrimSpace(*r.Subject)
		r.Subject = &s
	}
}

func (r UpdateUnitRequest) HasChanges() bool {
	return r.UnitName != nil || r.Available != nil || r.Subject != nil
}

func (r UpdateUnitRequest) Apply(m *unitModel.UnitModel) {
	if r.UnitName != nil {
		m.UnitName = *r.UnitName
	}
	if r.Available != nil {
		m.UnitAvailable = *r.Available
	}
	if r.Subject != nil {
		m.UnitSubjectID = uuid.MustParse(*r.Subject)
	}
}
