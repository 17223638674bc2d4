package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestGenerateExamSamplesAndPersists(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	teacherID := uuid.New()
	unitID := uuid.New()
	examID := uuid.New()
	q1, q2 := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "units" WHERE unit_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"unit_id", "unit_name", "unit_available"}).
			AddRow(unitID.String(), "Unit One", true))
	mock.ExpectQuery(`SELECT \* FROM "teachers" WHERE teacher_id`).
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id"}).AddRow(teacherID.String()))
	mock.ExpectQuery(`SELECT \* FROM "students" WHERE student_id`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}).AddRow(studentID.String()))
	mock.ExpectQuery(`SELECT \* FROM "questions" WHERE question_unit_id IN .+ ORDER BY random\(\) LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"question_id"}).
			AddRow(q1.String()).AddRow(q2.String()))
	mock.ExpectQuery(`INSERT INTO "exams"`).
		WillReturnRows(sqlmock.NewRows([]string{"exam_id"}).AddRow(examID.String()))
	mock.ExpectCommit()

	exam, questions, err := GenerateExam(db, studentID, []uuid.UUID{unitID}, teacherID, "normal", 2)
	require.NoError(t, err)
	require.NotNil(t, exam)
	assert.Len(t, questions, 2)
	assert.Equal(t, 2, exam.ExamNumberOfQuestions)
	assert.ElementsMatch(t, []string{q1.String(), q2.String()}, []string(exam.ExamQuestionIDs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateExamNotEnoughQuestions(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	teacherID := uuid.New()
	unitID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "units" WHERE unit_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"unit_id", "unit_name", "unit_available"}).
			AddRow(unitID.String(), "Unit One", true))
	mock.ExpectQuery(`SELECT \* FROM "teachers" WHERE teacher_id`).
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id"}).AddRow(teacherID.String()))
	mock.ExpectQuery(`SELECT \* FROM "students" WHERE student_id`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}).AddRow(studentID.String()))
	mock.ExpectQuery(`SELECT \* FROM "questions" WHERE question_unit_id IN .+ ORDER BY random\(\) LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"question_id"}).AddRow(uuid.New().String()))
	mock.ExpectRollback()

	_, _, err := GenerateExam(db, studentID, []uuid.UUID{unitID}, teacherID, "hard", 3)
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Not enough questions available. Found only 1", fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateExamRequiresPurchase(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	teacherID := uuid.New()
	unitID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "units" WHERE unit_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"unit_id", "unit_name", "unit_available"}).
			AddRow(unitID.String(), "Paid Unit", false))
	mock.ExpectQuery(`SELECT \* FROM "teachers" WHERE teacher_id`).
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id"}).AddRow(teacherID.String()))
	mock.ExpectQuery(`SELECT \* FROM "students" WHERE student_id`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "student_purchased_unit_ids"}).
			AddRow(studentID.String(), "{}"))
	mock.ExpectRollback()

	_, _, err := GenerateExam(db, studentID, []uuid.UUID{unitID}, teacherID, "easy", 1)
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Unit Paid Unit is not available. Please purchase it first.", fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateExamMissingUnits(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "units" WHERE unit_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"unit_id", "unit_name", "unit_available"}))
	mock.ExpectRollback()

	_, _, err := GenerateExam(db, uuid.New(), []uuid.UUID{uuid.New()}, uuid.New(), "normal", 1)
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Equal(t, "One or more units not found", fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
