package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const DefaultProfilePhotoURL = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"

// ExamHistoryEntry is an embedded value object on the student record; the
// mark is supplied by an external process, never computed here.
type ExamHistoryEntry struct {
	SubjectID         string   `json:"subjectId"`
	Mark              int      `json:"mark"`
	NumberOfQuestions int      `json:"numberOfQuestions"`
	UnitIDs           []string `json:"units"`
}

type StudentModel struct {
	StudentID           uuid.UUID      `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentUserName     string         `gorm:"column:student_user_name;type:varchar(100);not null" json:"student_user_name"`
	StudentPhoneNumber  string         `gorm:"column:student_phone_number;type:varchar(10);not null;uniqueIndex" json:"student_phone_number"`
	StudentPassword     string         `gorm:"column:student_password;type:text;not null" json:"-"`
	StudentGender       string         `gorm:"column:student_gender;type:varchar(10);not null" json:"student_gender"`
	StudentAge          int            `gorm:"column:student_age;not null" json:"student_age"`
	StudentRole         string         `gorm:"column:student_role;type:varchar(20);not null;default:'student'" json:"student_role"`
	StudentProfilePhoto datatypes.JSON `gorm:"column:student_profile_photo;type:jsonb" json:"student_profile_photo"`

	StudentFavoriteQuestionIDs  pq.StringArray `gorm:"column:student_favorite_question_ids;type:text[];not null;default:'{}'" json:"student_favorite_question_ids"`
	StudentPurchasedUnitIDs     pq.StringArray `gorm:"column:student_purchased_unit_ids;type:text[];not null;default:'{}'" json:"student_purchased_unit_ids"`
	StudentPurchasedCourseIDs   pq.StringArray `gorm:"column:student_purchased_course_ids;type:text[];not null;default:'{}'" json:"student_purchased_course_ids"`
	StudentPurchasedLanguageIDs pq.StringArray `gorm:"column:student_purchased_language_ids;type:text[];not null;default:'{}'" json:"student_purchased_language_ids"`

	StudentExamHistory datatypes.JSON `gorm:"column:student_exam_history;type:jsonb;not null;default:'[]'" json:"student_exam_history"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

// HasPurchasedUnit reports membership in the purchased-units set.
func (m *StudentModel) HasPurchasedUnit(unitID uuid.UUID) bool {
	id := unitID.String()
	for _, v := range m.StudentPurchasedUnitIDs {
		if v == id {
			return true
		}
	}
	return false
}
