package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lqModel "universe_backend/internals/features/languages/questions/model"
)

var validate = validator.New()

func TestWordQuestionToModelCarriesAnswerBlock(t *testing.T) {
	req := CreateWordQuestionRequest{
		Level:        "7e6a2f1c-0f1d-4b62-9c2d-1a2b3c4d5e6f",
		Text:         "Ich ___ nach Hause.",
		Word:         "gehe",
		Correct:      "go",
		FirstAnswer:  "go",
		SecondAnswer: "went",
		ThirdAnswer:  "gone",
		ForthAnswer:  "going",
	}
	require.NoError(t, validate.Struct(req))

	m := req.ToModel(lqModel.KindEmpty)
	assert.Equal(t, lqModel.KindEmpty, m.LqKind)
	require.NotNil(t, m.LqWord)
	assert.Equal(t, "gehe", *m.LqWord)
	require.NotNil(t, m.LqForthAnswer)
	assert.Equal(t, "going", *m.LqForthAnswer)
}

func TestTextQuestionToModelLeavesAnswerBlockEmpty(t *testing.T) {
	req := CreateTextQuestionRequest{
		Level: "7e6a2f1c-0f1d-4b62-9c2d-1a2b3c4d5e6f",
		Text:  "Repeat after the speaker.",
	}
	require.NoError(t, validate.Struct(req))

	m := req.ToModel(lqModel.KindListen)
	assert.Equal(t, lqModel.KindListen, m.LqKind)
	assert.Nil(t, m.LqWord)
	assert.Nil(t, m.LqCorrect)
}

func TestWordQuestionRequiresAllAnswers(t *testing.T) {
	req := CreateWordQuestionRequest{
		Level: "7e6a2f1c-0f1d-4b62-9c2d-1a2b3c4d5e6f",
		Text:  "Ich ___ nach Hause.",
		Word:  "gehe",
	}
	assert.Error(t, validate.Struct(req))
}

func TestHasAnswerBlockByKind(t *testing.T) {
	assert.True(t, lqModel.HasAnswerBlock(lqModel.KindEmpty))
	assert.True(t, lqModel.HasAnswerBlock(lqModel.KindMean))
	assert.False(t, lqModel.HasAnswerBlock(lqModel.KindListen))
	assert.False(t, lqModel.HasAnswerBlock(lqModel.KindReadTalk))
	assert.False(t, lqModel.HasAnswerBlock(lqModel.KindRanking))
}
