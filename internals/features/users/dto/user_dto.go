package dto

import (
	"strings"

	userModel "universe_backend/internals/features/users/model"
)

// RegisterStudentRequest arrives as multipart form fields alongside the
// required profilePhoto file.
type RegisterStudentRequest struct {
	UserName    string `json:"userName" form:"userName" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" validate:"required,len=10,numeric"`
	Password    string `json:"password" form:"password" validate:"required,min=8"`
	Gender      string `json:"gender" form:"gender" validate:"required,oneof=male female"`
	Age         int    `json:"age" form:"age" validate:"required,min=15,max=25"`
}

func (r *RegisterStudentRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Gender = strings.TrimSpace(strings.ToLower(r.Gender))
}

func (r RegisterStudentRequest) ToModel(hashedPassword string) userModel.StudentModel {
	return userModel.StudentModel{
		StudentUserName:    r.UserName,
		StudentPhoneNumber: r.PhoneNumber,
		StudentPassword:    hashedPassword,
		StudentGender:      r.Gender,
		StudentAge:         r.Age,
	}
}

type RegisterTeacherRequest struct {
	UserName    string `json:"userName" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	Password    string `json:"password" validate:"required,min=8"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	Age         int    `json:"age" validate:"required,min=15,max=70"`
	Subject     string `json:"subject" validate:"omitempty,uuid"`
}

func (r *RegisterTeacherRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Gender = strings.TrimSpace(strings.ToLower(r.Gender))
	r.Subject = strings.TrimSpace(r.Subject)
}

func (r RegisterTeacherRequest) ToModel(hashedPassword string) userModel.TeacherModel {
	return userModel.TeacherModel{
		TeacherUserName:    r.UserName,
		TeacherPhoneNumber: r.PhoneNumber,
		TeacherPassword:    hashedPassword,
		TeacherGender:      r.Gender,
		TeacherAge:         r.Age,
	}
}

// RegisterDashRequest creates dashboard identities. Role defaults to sales
// when omitted; superAdmin accounts are seeded, never registered.
type RegisterDashRequest struct {
	UserName    string `json:"userName" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	Password    string `json:"password" validate:"required,min=8"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	Age         int    `json:"age" validate:"required,min=15,max=70"`
	Role        string `json:"role" validate:"omitempty,oneof=admin sales"`
}

func (r *RegisterDashRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Gender = strings.TrimSpace(strings.ToLower(r.Gender))
	r.Role = strings.TrimSpace(r.Role)
}

func (r RegisterDashRequest) ToModel(hashedPassword string) userModel.UserModel {
	m := userModel.UserModel{
		UserName:        r.UserName,
		UserPhoneNumber: r.PhoneNumber,
		UserPassword:    hashedPassword,
		UserGender:      r.Gender,
		UserAge:         r.Age,
	}
	if r.Role != "" {
		m.UserRole = r.Role
	}
	return m
}

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	Password    string `json:"password" validate:"required,min=8"`
}

func (r *LoginRequest) Normalize() {
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
}

type UpdateProfileRequest struct {
	UserName    *string `json:"userName" form:"userName" validate:"omitempty,min=2,max=100"`
	PhoneNumber *string `json:"phoneNumber" form:"phoneNumber" validate:"omitempty,len=10,numeric"`
	Password    *string `json:"password" form:"password" validate:"omitempty,min=8"`
	Gender      *string `json:"gender" form:"gender" validate:"omitempty,oneof=male female"`
	Age         *int    `json:"age" form:"age" validate:"omitempty,min=15,max=70"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.UserName != nil {
		s := strings.TrimSpace(*r.UserName)
		r.UserName = &s
	}
	if r.PhoneNumber != nil {
		s := strings.TrimSpace(*r.PhoneNumber)
		r.PhoneNumber = &s
	}
	if r.Gender != nil {
		s := strings.TrimSpace(strings.ToLower(*r.Gender))
		r.Gender = &s
	}
}

func (r UpdateProfileRequest) HasChanges() bool {
	return r.UserName != nil || r.PhoneNumber != nil || r.Password != nil ||
		r.Gender != nil || r.Age != nil
}

// AddExamHistoryRequest appends one result entry to a student record. The
// mark is produced by the exam client, not recomputed here.
type AddExamHistoryRequest struct {
	Student           string   `json:"student" validate:"required,uuid"`
	Subject           string   `json:"subject" validate:"required,uuid"`
	Mark              int      `json:"mark" validate:"min=0,max=100"`
	NumberOfQuestions int      `json:"numberOfQuestions" validate:"required,min=1"`
	Units             []string `json:"units" validate:"required,min=1,dive,uuid"`
}

func (r *AddExamHistoryRequest) Normalize() {
	r.Student = strings.TrimSpace(r.Student)
	r.Subject = strings.TrimSpace(r.Subject)
	for i := range r.Units {
		r.Units[i] = strings.TrimSpace(r.Units[i])
	}
}

func (r AddExamHistoryRequest) ToEntry() userModel.ExamHistoryEntry {
	return userModel.ExamHistoryEntry{
		SubjectID:         r.Subject,
		Mark:              r.Mark,
		NumberOfQuestions: r.NumberOfQuestions,
		UnitIDs:           r.Units,
	}
}
