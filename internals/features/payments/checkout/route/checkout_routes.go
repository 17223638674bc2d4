package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	checkoutController "universe_backend/internals/features/payments/checkout/controller"
	"universe_backend/internals/middlewares/auth"
)

// CheckoutRoutes mounts /api/pay. The notification endpoint is unauthed:
// midtrans calls it server-to-server and the signature check guards it.
func CheckoutRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := checkoutController.NewCheckoutController(db)

	group := api.Group("/pay")
	group.Post("/checkout/:type/:id",
		auth.VerifyToken(), auth.CheckRole(constants.RoleStudent), ctrl.Checkout)
	group.Post("/notification", ctrl.HandleNotification)
}
