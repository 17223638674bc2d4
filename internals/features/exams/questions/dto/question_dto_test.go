package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

func mustParse(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func answers(correct ...bool) []AnswerPayload {
	out := make([]AnswerPayload, 0, len(correct))
	for i, c := range correct {
		out = append(out, AnswerPayload{AnswerText: "answer " + string(rune('A'+i)), IsCorrect: c})
	}
	return out
}

func validCreate() CreateQuestionRequest {
	return CreateQuestionRequest{
		Unit:       "7e6a2f1c-0f1d-4b62-9c2d-1a2b3c4d5e6f",
		Text:       "What is the capital of France?",
		Difficulty: "normal",
		Type:       "single",
		Explanation: ExplanationPayload{
			Type:    "text",
			Content: "Paris has been the capital since 508.",
		},
		Requests: []RequestPayload{
			{RequestText: "Pick the capital", Answers: answers(true, false, false, false)},
		},
	}
}

func TestCreateQuestionValid(t *testing.T) {
	req := validCreate()
	require.NoError(t, validate.Struct(req))
	assert.NoError(t, req.Validate(false))
}

func TestCreateQuestionRejectsWrongAnswerCount(t *testing.T) {
	req := validCreate()
	req.Requests[0].Answers = answers(true, false, false)
	assert.Error(t, validate.Struct(req))

	req.Requests[0].Answers = answers(true, false, false, false, false)
	assert.Error(t, validate.Struct(req))
}

func TestCreateQuestionSingleNeedsExactlyOneCorrect(t *testing.T) {
	req := validCreate()
	req.Requests[0].Answers = answers(true, true, false, false)
	require.NoError(t, validate.Struct(req))
	assert.EqualError(t, req.Validate(false),
		"Single choice questions must have exactly one correct answer.")

	req.Requests[0].Answers = answers(false, false, false, false)
	assert.Error(t, req.Validate(false))
}

func TestCreateQuestionMultipleNeedsAtLeastOneCorrect(t *testing.T) {
	req := validCreate()
	req.Type = "multiple"
	req.Requests[0].Answers = answers(false, false, false, false)
	assert.EqualError(t, req.Validate(false),
		"Multiple choice questions must have at least one correct answer.")

	req.Requests[0].Answers = answers(true, true, false, false)
	assert.NoError(t, req.Validate(false))
}

func TestCreateQuestionExplanationImageRule(t *testing.T) {
	req := validCreate()
	req.Explanation = ExplanationPayload{Type: "image"}

	assert.EqualError(t, req.Validate(false),
		"Explanation image is required when explanation type is 'image'.")
	assert.NoError(t, req.Validate(true))
}

func TestCreateQuestionExplanationContentRequired(t *testing.T) {
	req := validCreate()
	req.Explanation = ExplanationPayload{Type: "text"}
	assert.EqualError(t, req.Validate(false), "Explanation content is required.")
}

func TestCreateQuestionRejectsBadEnums(t *testing.T) {
	req := validCreate()
	req.Difficulty = "impossible"
	assert.Error(t, validate.Struct(req))

	req = validCreate()
	req.Type = "essay"
	assert.Error(t, validate.Struct(req))
}

func TestCreateQuestionToModelMarshalsPayloads(t *testing.T) {
	req := validCreate()
	teacherID := mustParse(t, "11111111-2222-3333-4444-555555555555")

	m, err := req.ToModel(teacherID)
	require.NoError(t, err)
	assert.Equal(t, teacherID, m.QuestionTeacherID)
	assert.JSONEq(t,
		`{"type":"text","content":"Paris has been the capital since 508."}`,
		string(m.QuestionExplanation))
	assert.Contains(t, string(m.QuestionRequests), `"requestText":"Pick the capital"`)
}

func TestUpdateQuestionValidateUsesEffectiveType(t *testing.T) {
	req := UpdateQuestionRequest{
		Requests: []RequestPayload{
			{RequestText: "Pick one", Answers: answers(true, true, false, false)},
		},
	}
	assert.Error(t, req.Validate("single", false))
	assert.NoError(t, req.Validate("multiple", false))
}

func TestUpdateQuestionHasChanges(t *testing.T) {
	assert.False(t, UpdateQuestionRequest{}.HasChanges())

	text := "new text"
	assert.True(t, UpdateQuestionRequest{Text: &text}.HasChanges())
}
