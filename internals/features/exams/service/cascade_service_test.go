package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUnitTreeDeletesChildrenFirst(t *testing.T) {
	db, mock := newMockDB(t)
	unitID := uuid.New()
	questionID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "question_id" FROM "questions" WHERE question_unit_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"question_id"}).AddRow(questionID.String()))
	mock.ExpectExec(`DELETE FROM "comments" WHERE comment_question_id IN`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "questions" WHERE question_id IN`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "units" WHERE unit_id IN`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := DeleteUnitTree(db, unitID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubjectTreeDetachesTeachers(t *testing.T) {
	db, mock := newMockDB(t)
	subjectID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "unit_id" FROM "units" WHERE unit_subject_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"unit_id"}))
	mock.ExpectExec(`UPDATE "teachers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "subjects" WHERE subject_id IN`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := DeleteSubjectTree(db, subjectID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClassTreeRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	classID := uuid.New()
	subjectID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "subject_id" FROM "subjects" WHERE subject_class_id`).
		WillReturnRows(sqlmock.NewRows([]string{"subject_id"}).AddRow(subjectID.String()))
	mock.ExpectQuery(`SELECT "unit_id" FROM "units" WHERE unit_subject_id IN`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := DeleteClassTree(db, classID)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
