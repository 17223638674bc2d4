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

	qrModel "universe_backend/internals/features/payments/qr/model"
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

func TestRedeemQrTokenConsumesAndGrants(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	entityID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "qr_payments" SET .* WHERE qr_type = \$\d+ AND qr_entity_id = \$\d+ AND qr_unique_code = \$\d+ AND qr_used = false`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), qrModel.TypeUnit, entityID, "code-123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE students SET student_purchased_unit_ids`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := RedeemQrToken(db, studentID, qrModel.TypeUnit, entityID, "code-123")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemQrTokenRejectsMismatchedType(t *testing.T) {
	db, mock := newMockDB(t)
	entityID := uuid.New()

	// A course-minted code redeemed as "level" matches no row because the
	// stored type is part of the consume condition; no grant runs.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "qr_payments" SET .* WHERE qr_type = \$\d+ AND qr_entity_id = \$\d+ AND qr_unique_code = \$\d+ AND qr_used = false`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), qrModel.TypeLevel, entityID, "course-code").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := RedeemQrToken(db, uuid.New(), qrModel.TypeLevel, entityID, "course-code")
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Invalid or already used QR code.", fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemQrTokenRejectsUsedCode(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "qr_payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := RedeemQrToken(db, uuid.New(), qrModel.TypeUnit, uuid.New(), "stale-code")
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Invalid or already used QR code.", fe.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemQrTokenReplayDoesNotDuplicateGrant(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()

	// The student already owns the entity, so the guarded append touches
	// zero rows; the student existence probe keeps that from being an error.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "qr_payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE students SET student_purchased_course_ids`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	err := RedeemQrToken(db, studentID, qrModel.TypeCourse, uuid.New(), "code-456")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantEntitlementRejectsUnknownType(t *testing.T) {
	db, _ := newMockDB(t)

	err := GrantEntitlement(db, uuid.New(), "bundle", uuid.New())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Invalid type. Must be 'course' or 'unit' or 'level'.", fe.Message)
}
