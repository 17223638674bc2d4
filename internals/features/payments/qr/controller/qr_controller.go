package controller

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	qrDTO "universe_backend/internals/features/payments/qr/dto"
	qrModel "universe_backend/internals/features/payments/qr/model"
	qrService "universe_backend/internals/features/payments/qr/service"
	helper "universe_backend/internals/helpers"
	"universe_backend/internals/middlewares/auth"
)

type QrController struct {
	DB *gorm.DB
}

func NewQrController(db *gorm.DB) *QrController {
	return &QrController{DB: db}
}

var validate = validator.New()

// entityTable maps a purchasable type to its table and id column.
func entityTable(qrType string) (table, idColumn string) {
	switch qrType {
	case qrModel.TypeCourse:
		return "courses", "course_id"
	case qrModel.TypeUnit:
		return "units", "unit_id"
	default:
		return "levels", "level_id"
	}
}

// GET /api/qr/generate-qr/:type/:id (superAdmin/admin/sales)
// Mints a single-use token and answers with a scannable PNG whose payload
// is the token JSON.
func (h *QrController) GenerateQr(c *fiber.Ctx) error {
	qrType := c.Params("type")
	if !qrModel.ValidType(qrType) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid type. Must be 'course' or 'unit' or 'level'.")
	}

	entityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid entity id")
	}

	table, idColumn := entityTable(qrType)
	var cnt int64
	if err := h.DB.Table(table).Where(idColumn+" = ?", entityID).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s not found.", qrType))
	}

	token, err := qrService.MintQrToken(h.DB, qrType, entityID)
	if err != nil {
		return err
	}

	payload, err := sonic.Marshal(qrDTO.QrPayload{
		Type:       token.QrType,
		EntityID:   token.QrEntityID.String(),
		UniqueCode: token.QrUniqueCode,
	})
	if err != nil {
		return err
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}

// POST /api/qr/process-payment (student)
func (h *QrController) ProcessPayment(c *fiber.Ctx) error {
	var req qrDTO.ProcessPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	var payload qrDTO.QrPayload
	if err := sonic.UnmarshalString(req.QrData, &payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or already used QR code.")
	}
	if !qrModel.ValidType(payload.Type) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid type. Must be 'course' or 'unit' or 'level'.")
	}
	entityID, err := uuid.Parse(payload.EntityID)
	if err != nil || payload.UniqueCode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or already used QR code.")
	}

	studentID, err := uuid.Parse(auth.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Access denied. No token provided.")
	}

	if err := qrService.RedeemQrToken(h.DB, studentID, payload.Type, entityID, payload.UniqueCode); err != nil {
		return err
	}

	label := strings.ToUpper(payload.Type[:1]) + payload.Type[1:]
	return helper.JsonMessage(c, fiber.StatusOK, fmt.Sprintf("%s purchased successfully.", label))
}
