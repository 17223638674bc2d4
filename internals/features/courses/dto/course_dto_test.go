package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

func validCourse() CreateCourseRequest {
	return CreateCourseRequest{
		CourseName:    "Algebra Basics",
		Teacher:       "7e6a2f1c-0f1d-4b62-9c2d-1a2b3c4d5e6f",
		Subject:       "11111111-2222-3333-4444-555555555555",
		InstituteName: "Universe Academy",
		Videos: []CourseVideoPayload{
			{Title: "Introduction", URL: "https://cdn.example.com/v/1.mp4", IsFree: true},
		},
	}
}

func TestCreateCourseValid(t *testing.T) {
	assert.NoError(t, validate.Struct(validCourse()))
}

func TestCreateCourseRequiresVideos(t *testing.T) {
	req := validCourse()
	req.Videos = nil
	assert.Error(t, validate.Struct(req))

	req.Videos = []CourseVideoPayload{}
	assert.Error(t, validate.Struct(req))
}

func TestCreateCourseVideoBounds(t *testing.T) {
	req := validCourse()
	req.Videos[0].Title = "x"
	assert.Error(t, validate.Struct(req))

	req = validCourse()
	req.Videos[0].URL = "not-a-url"
	assert.Error(t, validate.Struct(req))
}

func TestCreateCourseToModelEmbedsVideos(t *testing.T) {
	m, err := validCourse().ToModel()
	require.NoError(t, err)
	assert.Contains(t, string(m.CourseVideos), `"title":"Introduction"`)
	assert.Contains(t, string(m.CourseVideos), `"isFree":true`)
}

func TestUpdateCourseHasChanges(t *testing.T) {
	assert.False(t, UpdateCourseRequest{}.HasChanges())

	name := "New Name"
	assert.True(t, UpdateCourseRequest{CourseName: &name}.HasChanges())
}
