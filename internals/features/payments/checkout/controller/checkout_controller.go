package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"universe_backend/internals/configs"
	checkoutDTO "universe_backend/internals/features/payments/checkout/dto"
	checkoutModel "universe_backend/internals/features/payments/checkout/model"
	checkoutService "universe_backend/internals/features/payments/checkout/service"
	qrModel "universe_backend/internals/features/payments/qr/model"
	qrService "universe_backend/internals/features/payments/qr/service"
	helper "universe_backend/internals/helpers"
	"universe_backend/internals/middlewares/auth"
)

type CheckoutController struct {
	DB *gorm.DB
}

func NewCheckoutController(db *gorm.DB) *CheckoutController {
	return &CheckoutController{DB: db}
}

// priceFor reads the env-configured price for one purchasable type.
func priceFor(entityType string) int64 {
	var key string
	switch entityType {
	case qrModel.TypeCourse:
		key = "PRICE_COURSE"
	case qrModel.TypeUnit:
		key = "PRICE_UNIT"
	default:
		key = "PRICE_LEVEL"
	}
	price, err := strconv.ParseInt(configs.GetEnv(key, "50000"), 10, 64)
	if err != nil {
		return 50000
	}
	return price
}

func entityTable(entityType string) (table, idColumn string) {
	switch entityType {
	case qrModel.TypeCourse:
		return "courses", "course_id"
	case qrModel.TypeUnit:
		return "units", "unit_id"
	default:
		return "levels", "level_id"
	}
}

// POST /api/pay/checkout/:type/:id (student)
// Opens a pending order and returns the Snap token the client pays with.
func (h *CheckoutController) Checkout(c *fiber.Ctx) error {
	entityType := c.Params("type")
	if !qrModel.ValidType(entityType) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid type. Must be 'course' or 'unit' or 'level'.")
	}

	entityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid entity id")
	}

	studentID, err := uuid.Parse(auth.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Access denied. No token provided.")
	}

	table, idColumn := entityTable(entityType)
	var cnt int64
	if err := h.DB.Table(table).Where(idColumn+" = ?", entityID).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s not found.", entityType))
	}

	order := checkoutModel.PurchaseOrderModel{
		OrderStudentID: studentID,
		OrderType:      entityType,
		OrderEntityID:  entityID,
		OrderAmount:    priceFor(entityType),
	}
	if err := h.DB.Create(&order).Error; err != nil {
		return err
	}

	snapToken, err := checkoutService.GenerateSnapToken(order, auth.UserName(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create payment token")
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Checkout created successfully", fiber.Map{
		"order":     order,
		"snapToken": snapToken,
	})
}

// POST /api/pay/notification
// Midtrans webhook. Settlement grants the same entitlement the QR flow
// grants, so paying online and scanning a QR converge on one code path.
func (h *CheckoutController) HandleNotification(c *fiber.Ctx) error {
	var n checkoutDTO.MidtransNotification
	if err := c.BodyParser(&n); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	n.Normalize()

	orderID, err := uuid.Parse(n.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
	}

	if !validSignature(n) {
		return fiber.NewError(fiber.StatusForbidden, "Invalid signature")
	}

	var order checkoutModel.PurchaseOrderModel
	if err := h.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return err
	}

	// State transitions are conditional UPDATEs gated on pending, so two
	// concurrent webhook deliveries cannot both take the same transition.
	switch n.TransactionStatus {
	case "capture", "settlement":
		if n.FraudStatus != "" && n.FraudStatus != "accept" {
			return helper.JsonMessage(c, fiber.StatusOK, "Payment held for review")
		}
		err := h.DB.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&checkoutModel.PurchaseOrderModel{}).
				Where("order_id = ? AND order_status = ?", order.OrderID, checkoutModel.StatusPending).
				Updates(map[string]interface{}{
					"order_status":  checkoutModel.StatusPaid,
					"order_paid_at": time.Now(),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errOrderProcessed
			}
			return qrService.GrantEntitlement(tx, order.OrderStudentID, order.OrderType, order.OrderEntityID)
		})
		if errors.Is(err, errOrderProcessed) {
			return helper.JsonMessage(c, fiber.StatusOK, "Order already processed")
		}
		if err != nil {
			return err
		}
		return helper.JsonMessage(c, fiber.StatusOK, "Payment settled")
	case "expire":
		return h.closePendingOrder(c, order.OrderID, checkoutModel.StatusExpired, "Order expired")
	case "cancel", "deny":
		return h.closePendingOrder(c, order.OrderID, checkoutModel.StatusCanceled, "Order canceled")
	default:
		return helper.JsonMessage(c, fiber.StatusOK, "Order still pending")
	}
}

var errOrderProcessed = errors.New("order already processed")

func (h *CheckoutController) closePendingOrder(c *fiber.Ctx, orderID uuid.UUID, status, message string) error {
	res := h.DB.Model(&checkoutModel.PurchaseOrderModel{}).
		Where("order_id = ? AND order_status = ?", orderID, checkoutModel.StatusPending).
		Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.JsonMessage(c, fiber.StatusOK, "Order already processed")
	}
	return helper.JsonMessage(c, fiber.StatusOK, message)
}

// validSignature checks the midtrans webhook signature:
// sha512(order_id + status_code + gross_amount + server_key).
func validSignature(n checkoutDTO.MidtransNotification) bool {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + configs.MidtransServerKey))
	return hex.EncodeToString(sum[:]) == n.SignatureKey
}
