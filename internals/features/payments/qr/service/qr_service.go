package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	qrModel "universe_backend/internals/features/payments/qr/model"
	userModel "universe_backend/internals/features/users/model"
)

// MintQrToken records a fresh single-use purchase token for one entity.
func MintQrToken(db *gorm.DB, qrType string, entityID uuid.UUID) (*qrModel.QrPaymentModel, error) {
	token := qrModel.QrPaymentModel{
		QrType:       qrType,
		QrEntityID:   entityID,
		QrUniqueCode: uuid.NewString(),
	}
	if err := db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// RedeemQrToken consumes the token and grants the entity to the student.
// The consume step is a single conditional UPDATE so two concurrent scans
// of the same code cannot both succeed. The stored type participates in the
// match, so a payload claiming a different type than the token was minted
// for never consumes it.
func RedeemQrToken(db *gorm.DB, studentID uuid.UUID, qrType string, entityID uuid.UUID, uniqueCode string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&qrModel.QrPaymentModel{}).
			Where("qr_type = ? AND qr_entity_id = ? AND qr_unique_code = ? AND qr_used = false",
				qrType, entityID, uniqueCode).
			Update("qr_used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid or already used QR code.")
		}
		return GrantEntitlement(tx, studentID, qrType, entityID)
	})
}

// GrantEntitlement appends the entity to the matching purchased set. The
// append is guarded in SQL so replays cannot duplicate an entry.
func GrantEntitlement(tx *gorm.DB, studentID uuid.UUID, entityType string, entityID uuid.UUID) error {
	var column string
	switch entityType {
	case qrModel.TypeCourse:
		column = "student_purchased_course_ids"
	case qrModel.TypeUnit:
		column = "student_purchased_unit_ids"
	case qrModel.TypeLevel:
		column = "student_purchased_language_ids"
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid type. Must be 'course' or 'unit' or 'level'.")
	}

	res := tx.Exec(
		"UPDATE students SET "+column+" = array_append("+column+", ?) WHERE student_id = ? AND NOT (? = ANY("+column+"))",
		entityID.String(), studentID, entityID.String(),
	)
	if res.Error != nil {
		return res.Error
	}

	// Zero rows means either a replay (already owned) or a missing student;
	// only the latter is an error.
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&userModel.StudentModel{}).
			Where("student_id = ?", studentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
	}
	return nil
}
