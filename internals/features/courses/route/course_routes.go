package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	courseController "universe_backend/internals/features/courses/controller"
	"universe_backend/internals/middlewares/auth"
)

// CourseRoutes mounts /api/view.
func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	group := api.Group("/view", auth.VerifyToken())
	adminOnly := auth.CheckRole(constants.AdminAndAbove...)

	group.Post("/course", adminOnly, ctrl.CreateCourse)
	group.Get("/course", ctrl.GetCourses)
	group.Put("/course/:id", adminOnly, ctrl.UpdateCourse)
	group.Delete("/course/:id", adminOnly, ctrl.DeleteCourse)
}
