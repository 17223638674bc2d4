package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "universe_backend/internals/features/courses/route"
	examRoute "universe_backend/internals/features/exams/route"
	languageRoute "universe_backend/internals/features/languages/route"
	checkoutRoute "universe_backend/internals/features/payments/checkout/route"
	qrRoute "universe_backend/internals/features/payments/qr/route"
	userRoute "universe_backend/internals/features/users/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up ExamRoutes...")
	examRoute.ExamRoutes(api, db)

	log.Println("[INFO] Setting up CourseRoutes...")
	courseRoute.CourseRoutes(api, db)

	log.Println("[INFO] Setting up LanguageRoutes...")
	languageRoute.LanguageRoutes(api, db)

	log.Println("[INFO] Setting up QrRoutes...")
	qrRoute.QrRoutes(api, db)

	log.Println("[INFO] Setting up CheckoutRoutes...")
	checkoutRoute.CheckoutRoutes(api, db)

	// 404 catch-all keeps the JSON envelope.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
}
