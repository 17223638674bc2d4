package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	qrController "universe_backend/internals/features/payments/qr/controller"
	"universe_backend/internals/middlewares/auth"
)

// QrRoutes mounts /api/qr.
func QrRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := qrController.NewQrController(db)

	group := api.Group("/qr", auth.VerifyToken())
	group.Get("/generate-qr/:type/:id",
		auth.CheckRole(constants.SalesAndAbove...), ctrl.GenerateQr)
	group.Post("/process-payment",
		auth.CheckRole(constants.RoleStudent), ctrl.ProcessPayment)
}
