package dto

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	courseModel "universe_backend/internals/features/courses/model"
)

type CourseVideoPayload struct {
	Title  string `json:"title" validate:"required,min=2,max=200"`
	URL    string `json:"url" validate:"required,url"`
	IsFree bool   `json:"isFree"`
}

type CreateCourseRequest struct {
	CourseName    string               `json:"courseName" validate:"required,min=2,max=100"`
	Teacher       string               `json:"teacher" validate:"required,uuid"`
	Subject       string               `json:"subject" validate:"required,uuid"`
	InstituteName string               `json:"instituteName" validate:"required,min=2,max=100"`
	Available     *bool                `json:"available"`
	Videos        []CourseVideoPayload `json:"videos" validate:"required,min=1,dive"`
}

func (r *CreateCourseRequest) Normalize() {
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.Teacher = strings.TrimSpace(r.Teacher)
	r.Subject = strings.TrimSpace(r.Subject)
	r.InstituteName = strings.TrimSpace(r.InstituteName)
	for i := range r.Videos {
		r.Videos[i].Title = strings.TrimSpace(r.Videos[i].Title)
		r.Videos[i].URL = strings.TrimSpace(r.Videos[i].URL)
	}
}

func (r CreateCourseRequest) ToModel() (courseModel.CourseModel, error) {
	videos := make([]courseModel.CourseVideo, 0, len(r.Videos))
	for _, v := range r.Videos {
		videos = append(videos, courseModel.CourseVideo{Title: v.Title, URL: v.URL, IsFree: v.IsFree})
	}
	videosJSON, err := sonic.Marshal(videos)
	if err != nil {
		return courseModel.CourseModel{}, err
	}

	m := courseModel.CourseModel{
		CourseName:          r.CourseName,
		CourseTeacherID:     uuid.MustParse(r.Teacher),
		CourseSubjectID:     uuid.MustParse(r.Subject),
		CourseInstituteName: r.InstituteName,
		CourseVideos:        datatypes.JSON(videosJSON),
	}
	if r.Available != nil {
		m.CourseAvailable = *r.Available
	}
	return m, nil
}

type UpdateCourseRequest struct {
	CourseName    *string              `json:"courseName" validate:"omitempty,min=2,max=100"`
	Teacher       *string              `json:"teacher" validate:"omitempty,uuid"`
	Subject       *string              `json:"subject" validate:"omitempty,uuid"`
	InstituteName *string              `json:"instituteName" validate:"omitempty,min=2,max=100"`
	Available     *bool                `json:"available"`
	Videos        []CourseVideoPayload `json:"videos" validate:"omitempty,min=1,dive"`
}

func (r *UpdateCourseRequest) Normalize() {
	if r.CourseName != nil {
		s := strings.TrimSpace(*r.CourseName)
		r.CourseName = &s
	}
	if r.Teacher != nil {
		s := strings.TrimSpace(*r.Teacher)
		r.Teacher = &s
	}
	if r.Subject != nil {
		s := strings.TrimSpace(*r.Subject)
		r.Subject = &s
	}
	if r.InstituteName != nil {
		s := strings.TrimSpace(*r.InstituteName)
		r.InstituteName = &s
	}
	for i := range r.Videos {
		r.Videos[i].Title = strings.TrimSpace(r.Videos[i].Title)
		r.Videos[i].URL = strings.TrimSpace(r.Videos[i].URL)
	}
}

func (r UpdateCourseRequest) HasChanges() bool {
	return r.CourseName != nil || r.Teacher != nil || r.Subject != nil ||
		r.InstituteName != nil || r.Available != nil || len(r.Videos) > 0
}

func (r UpdateCourseRequest) Apply(m *courseModel.CourseModel) error {
	if r.CourseName != nil {
		m.CourseName = *r.CourseName
	}
	if r.Teacher != nil {
		m.CourseTeacherID = uuid.MustParse(*r.Teacher)
	}
	if r.Subject != nil {
		m.CourseSubjectID = uuid.MustParse(*r.Subject)
	}
	if r.InstituteName != nil {
		m.CourseInstituteName = *r.InstituteName
	}
	if r.Available != nil {
		m.CourseAvailable = *r.Available
	}
	if len(r.Videos) > 0 {
		videos := make([]courseModel.CourseVideo, 0, len(r.Videos))
		for _, v := range r.Videos {
			videos = append(videos, courseModel.CourseVideo{Title: v.Title, URL: v.URL, IsFree: v.IsFree})
		}
		videosJSON, err := sonic.Marshal(videos)
		if err != nil {
			return err
		}
		m.CourseVideos = datatypes.JSON(videosJSON)
	}
	return nil
}
