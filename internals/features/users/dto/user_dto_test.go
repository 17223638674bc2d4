package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func validStudent() RegisterStudentRequest {
	return RegisterStudentRequest{
		UserName:    "Andi Wijaya",
		PhoneNumber: "0812345678",
		Password:    "password123",
		Gender:      "male",
		Age:         18,
	}
}

func TestRegisterStudentValid(t *testing.T) {
	assert.NoError(t, validate.Struct(validStudent()))
}

func TestRegisterStudentPhoneLength(t *testing.T) {
	req := validStudent()
	req.PhoneNumber = "08123"
	assert.Error(t, validate.Struct(req))

	req.PhoneNumber = "08123456789"
	assert.Error(t, validate.Struct(req))

	req.PhoneNumber = "08123abcde"
	assert.Error(t, validate.Struct(req))
}

func TestRegisterStudentAgeBounds(t *testing.T) {
	req := validStudent()
	req.Age = 14
	assert.Error(t, validate.Struct(req))

	req.Age = 26
	assert.Error(t, validate.Struct(req))

	req.Age = 25
	assert.NoError(t, validate.Struct(req))
}

func TestRegisterStudentPasswordMin(t *testing.T) {
	req := validStudent()
	req.Password = "short"
	assert.Error(t, validate.Struct(req))
}

func TestRegisterStudentGenderEnum(t *testing.T) {
	req := validStudent()
	req.Gender = "other"
	assert.Error(t, validate.Struct(req))

	req.Gender = "FEMALE"
	req.Normalize()
	assert.NoError(t, validate.Struct(req))
}

func TestAddExamHistoryMarkBounds(t *testing.T) {
	req := AddExamHistoryRequest{
		Student:           "7e6a2f1c-0f1d-4b62-9c2d-1a2b3c4d5e6f",
		Subject:           "11111111-2222-3333-4444-555555555555",
		Mark:              85,
		NumberOfQuestions: 10,
		Units:             []string{"22222222-3333-4444-5555-666666666666"},
	}
	assert.NoError(t, validate.Struct(req))

	req.Mark = 101
	assert.Error(t, validate.Struct(req))
}

func TestAddExamHistoryToEntry(t *testing.T) {
	req := AddExamHistoryRequest{
		Student:           "7e6a2f1c-0f1d-4b62-9c2d-1a2b3c4d5e6f",
		Subject:           "11111111-2222-3333-4444-555555555555",
		Mark:              70,
		NumberOfQuestions: 5,
		Units:             []string{"22222222-3333-4444-5555-666666666666"},
	}
	entry := req.ToEntry()
	assert.Equal(t, req.Subject, entry.SubjectID)
	assert.Equal(t, 70, entry.Mark)
	assert.Equal(t, 5, entry.NumberOfQuestions)
	assert.Equal(t, req.Units, entry.UnitIDs)
}
