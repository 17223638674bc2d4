package dto

import (
	"strings"

	languageModel "universe_backend/internals/features/languages/languages/model"
)

type CreateLanguageRequest struct {
	LanguageName string `json:"languageName" validate:"required,min=2,max=100"`
}

func (r *CreateLanguageRequest) Normalize() {
	r.LanguageName = strings.TrimSpace(r.LanguageName)
}

func (r CreateLanguageRequest) ToModel() languageModel.LanguageModel {
	return languageModel.LanguageModel{LanguageName: r.LanguageName}
}

type UpdateLanguageRequest struct {
	LanguageName *string `json:"languageName" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateLanguageRequest) Normalize() {
	if r.LanguageName != nil {
		s := strings.TrimSpace(*r.LanguageName)
		r.LanguageName = &s
	}
}

func (r UpdateLanguageRequest) HasChanges() bool { return r.LanguageName != nil }

func (r UpdateLanguageRequest) Apply(m *languageModel.LanguageModel) {
	if r.LanguageName != nil {
		m.LanguageName = *r.LanguageName
	}
}
