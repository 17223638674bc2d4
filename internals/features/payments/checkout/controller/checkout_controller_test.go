package controller

import (
	"crypto/sha512"
	"encoding/hex"
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

	"universe_backend/internals/configs"
	helper "universe_backend/internals/helpers"
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

func notificationApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctrl := NewCheckoutController(db)
	app.Post("/notification", ctrl.HandleNotification)
	return app
}

func signedNotification(t *testing.T, orderID, status string) string {
	t.Helper()
	statusCode := "200"
	grossAmount := "50000.00"
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + configs.MidtransServerKey))
	return `{
		"order_id": "` + orderID + `",
		"transaction_status": "` + status + `",
		"fraud_status": "accept",
		"status_code": "` + statusCode + `",
		"gross_amount": "` + grossAmount + `",
		"signature_key": "` + hex.EncodeToString(sum[:]) + `"
	}`
}

func postNotification(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/notification", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func pendingOrderRow(orderID, studentID, entityID uuid.UUID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"order_id", "order_student_id", "order_type", "order_entity_id", "order_amount", "order_status",
	}).AddRow(orderID.String(), studentID.String(), "unit", entityID.String(), int64(50000), status)
}

func TestHandleNotificationSettlementGrants(t *testing.T) {
	configs.MidtransServerKey = "test-server-key"
	db, mock := newMockDB(t)
	orderID := uuid.New()
	studentID := uuid.New()
	entityID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "purchase_orders" WHERE order_id`).
		WillReturnRows(pendingOrderRow(orderID, studentID, entityID, "pending"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "purchase_orders" SET .* WHERE order_id = \$\d+ AND order_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE students SET student_purchased_unit_ids`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	app := notificationApp(db)
	status, body := postNotification(t, app, signedNotification(t, orderID.String(), "settlement"))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Payment settled")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleNotificationSettlementLosesRace(t *testing.T) {
	configs.MidtransServerKey = "test-server-key"
	db, mock := newMockDB(t)
	orderID := uuid.New()
	studentID := uuid.New()
	entityID := uuid.New()

	// The order read as pending, but another delivery took the transition
	// first; the conditional UPDATE matches nothing and no grant runs.
	mock.ExpectQuery(`SELECT \* FROM "purchase_orders" WHERE order_id`).
		WillReturnRows(pendingOrderRow(orderID, studentID, entityID, "pending"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "purchase_orders" SET .* WHERE order_id = \$\d+ AND order_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	app := notificationApp(db)
	status, body := postNotification(t, app, signedNotification(t, orderID.String(), "settlement"))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Order already processed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleNotificationExpireGatedOnPending(t *testing.T) {
	configs.MidtransServerKey = "test-server-key"
	db, mock := newMockDB(t)
	orderID := uuid.New()
	studentID := uuid.New()
	entityID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "purchase_orders" WHERE order_id`).
		WillReturnRows(pendingOrderRow(orderID, studentID, entityID, "paid"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "purchase_orders" SET .* WHERE order_id = \$\d+ AND order_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	app := notificationApp(db)
	status, body := postNotification(t, app, signedNotification(t, orderID.String(), "expire"))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Order already processed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleNotificationRejectsBadSignature(t *testing.T) {
	configs.MidtransServerKey = "test-server-key"
	db, _ := newMockDB(t)
	orderID := uuid.New()

	body := `{
		"order_id": "` + orderID.String() + `",
		"transaction_status": "settlement",
		"status_code": "200",
		"gross_amount": "50000.00",
		"signature_key": "forged"
	}`

	app := notificationApp(db)
	status, respBody := postNotification(t, app, body)

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, respBody, "Invalid signature")
}
