package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	userController "universe_backend/internals/features/users/controller"
	"universe_backend/internals/middlewares"
	"universe_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)

	group := api.Group("/auth")
	group.Post("/register", middlewares.RegisterRateLimiter(), ctrl.RegisterStudent)
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	group.Post("/dashadmin/login", middlewares.LoginRateLimiter(), ctrl.LoginDash)
	group.Post("/dashadmin/register",
		auth.VerifyToken(), auth.CheckRole(constants.AdminAndAbove...), ctrl.RegisterDash)
	group.Post("/teacher/register",
		auth.VerifyToken(), auth.CheckRole(constants.AdminAndAbove...), ctrl.RegisterTeacher)
	group.Get("/logout", auth.VerifyToken(), ctrl.Logout)
}
