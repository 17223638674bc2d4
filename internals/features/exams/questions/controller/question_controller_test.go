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
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	helper "universe_backend/internals/helpers"
	"universe_backend/internals/middlewares/auth"
)

func questionApp(db *gorm.DB, callerID, role string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctrl := NewQuestionController(db)
	app.Post("/question", func(c *fiber.Ctx) error {
		c.Locals(auth.LocalsUserID, callerID)
		c.Locals(auth.LocalsRole, role)
		return c.Next()
	}, ctrl.CreateQuestion)
	return app
}

func createQuestionBody(unitID, teacherID string) string {
	return `{
		"unit": "` + unitID + `",
		"teacher": "` + teacherID + `",
		"text": "What is 2 + 2?",
		"difficulty": "easy",
		"type": "single",
		"explanation": {"type": "text", "content": "Basic arithmetic."},
		"requests": [{
			"requestText": "Pick the sum",
			"answers": [
				{"answerText": "3", "isCorrect": false},
				{"answerText": "4", "isCorrect": true},
				{"answerText": "5", "isCorrect": false},
				{"answerText": "6", "isCorrect": false}
			]
		}]
	}`
}

func TestCreateQuestionJSONWithTeacherField(t *testing.T) {
	db, mock := newMockDB(t)
	adminID := uuid.New()
	teacherID := uuid.New()
	unitID := uuid.New()
	questionID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "teachers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "units"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"question_id"}).AddRow(questionID.String()))
	mock.ExpectCommit()

	app := questionApp(db, adminID.String(), constants.RoleAdmin)
	req := httptest.NewRequest(fiber.MethodPost, "/question",
		strings.NewReader(createQuestionBody(unitID.String(), teacherID.String())))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(body), "Question created successfully")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateQuestionJSONWithoutTeacherForAdmin(t *testing.T) {
	db, _ := newMockDB(t)
	adminID := uuid.New()
	unitID := uuid.New()

	app := questionApp(db, adminID.String(), constants.RoleAdmin)
	req := httptest.NewRequest(fiber.MethodPost, "/question",
		strings.NewReader(createQuestionBody(unitID.String(), "")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `\"teacher\" is required`)
}
