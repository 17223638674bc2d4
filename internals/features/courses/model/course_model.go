package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseVideo is an embedded value object persisted inside course_videos.
type CourseVideo struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	IsFree bool   `json:"isFree"`
}

type CourseModel struct {
	CourseID            uuid.UUID      `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseName          string         `gorm:"column:course_name;type:varchar(100);not null" json:"course_name"`
	CourseTeacherID     uuid.UUID      `gorm:"column:course_teacher_id;type:uuid;not null;index" json:"course_teacher_id"`
	CourseSubjectID     uuid.UUID      `gorm:"column:course_subject_id;type:uuid;not null;index" json:"course_subject_id"`
	CourseInstituteName string         `gorm:"column:course_institute_name;type:varchar(100);not null" json:"course_institute_name"`
	CourseAvailable     bool           `gorm:"column:course_available;not null;default:false" json:"course_available"`
	CourseVideos        datatypes.JSON `gorm:"column:course_videos;type:jsonb;not null" json:"course_videos"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;not null;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string { return "courses" }
