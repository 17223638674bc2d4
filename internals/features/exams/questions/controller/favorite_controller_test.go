package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	helper "universe_backend/internals/helpers"
	"universe_backend/internals/middlewares/auth"
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

func favoriteApp(db *gorm.DB, callerID, role string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctrl := NewQuestionController(db)
	app.Post("/fav", func(c *fiber.Ctx) error {
		c.Locals(auth.LocalsUserID, callerID)
		c.Locals(auth.LocalsRole, role)
		return c.Next()
	}, ctrl.ToggleFavorite)
	return app
}

func postFavorite(t *testing.T, app *fiber.App, questionID string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/fav",
		strings.NewReader(`{"question":"`+questionID+`"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestToggleFavoriteAddsForStudent(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	questionID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`UPDATE students SET student_favorite_question_ids = CASE WHEN .+ = ANY\(student_favorite_question_ids\) THEN array_remove\(student_favorite_question_ids, .+\) ELSE array_append\(student_favorite_question_ids, .+\) END WHERE student_id = .+ RETURNING`).
		WithArgs(questionID.String(), questionID.String(), questionID.String(), studentID, questionID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"added"}).AddRow(true))

	app := favoriteApp(db, studentID.String(), constants.RoleStudent)
	status, body := postFavorite(t, app, questionID.String())

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Question added to favorites")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavoriteRemovesForTeacher(t *testing.T) {
	db, mock := newMockDB(t)
	teacherID := uuid.New()
	questionID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`UPDATE teachers SET teacher_favorite_question_ids = CASE WHEN .+ WHERE teacher_id = .+ RETURNING`).
		WithArgs(questionID.String(), questionID.String(), questionID.String(), teacherID, questionID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"added"}).AddRow(false))

	app := favoriteApp(db, teacherID.String(), constants.RoleTeacher)
	status, body := postFavorite(t, app, questionID.String())

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Question removed from favorites")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavoriteUnknownQuestion(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	app := favoriteApp(db, studentID.String(), constants.RoleStudent)
	status, body := postFavorite(t, app, uuid.NewString())

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "Question not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
