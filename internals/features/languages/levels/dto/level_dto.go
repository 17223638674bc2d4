package dto

import (
	"strings"

	"github.com/google/uuid"

	levelModel "universe_backend/internals/features/languages/levels/model"
)

type CreateLevelRequest struct {
	Language  string `json:"language" validate:"required,uuid"`
	Number    int    `json:"number" validate:"required,min=1"`
	Available *bool  `json:"available"`
}

func (r *CreateLevelRequest) Normalize() {
	r.Language = strings.TrimSpace(r.Language)
}

func (r CreateLevelRequest) ToModel() levelModel.LevelModel {
	m := levelModel.LevelModel{
		LevelLanguageID: uuid.MustParse(r.Language),
		LevelNumber:     r.Number,
	}
	if r.Available != nil {
		m.LevelAvailable = *r.Available
	}
	return m
}

type UpdateLevelRequest struct {
	Number    *int  `json:"number" validate:"omitempty,min=1"`
	Available *bool `json:"available"`
}

func (r UpdateLevelRequest) HasChanges() bool {
	return r.Number != nil || r.Available != nil
}

func (r UpdateLevelRequest) Apply(m *levelModel.LevelModel) {
	if r.Number != nil {
		m.LevelNumber = *r.Number
	}
	if r.Available != nil {
		m.LevelAvailable = *r.Available
	}
}
