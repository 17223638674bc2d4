package dto

import "strings"

// GenerateExamRequest carries the inputs for random question sampling. Unit
// and teacher existence, purchase entitlement and question availability are
// all checked against the store, not here.
type GenerateExamRequest struct {
	Units             []string `json:"units" validate:"required,min=1,dive,uuid"`
	Teacher           string   `json:"teacher" validate:"required,uuid"`
	Difficulty        string   `json:"difficulty" validate:"required,oneof=hard normal easy"`
	NumberOfQuestions int      `json:"numberOfQuestions" validate:"required,min=1,max=100"`
}

func (r *GenerateExamRequest) Normalize() {
	for i := range r.Units {
		r.Units[i] = strings.TrimSpace(r.Units[i])
	}
	r.Teacher = strings.TrimSpace(r.Teacher)
	r.Difficulty = strings.TrimSpace(r.Difficulty)
}
