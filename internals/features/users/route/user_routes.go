package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	userController "universe_backend/internals/features/users/controller"
	"universe_backend/internals/middlewares/auth"
)

// UserRoutes mounts /api/ctrl (dashboard lists, profiles, exam history).
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	group := api.Group("/ctrl", auth.VerifyToken())

	group.Get("/users/dash", auth.CheckRole(constants.RoleSuperAdmin), ctrl.GetUsersDash)
	group.Get("/teachers/dash", auth.CheckRole(constants.DashboardRoles...), ctrl.GetTeachersDash)
	group.Get("/students/dash", auth.CheckRole(constants.DashboardRoles...), ctrl.GetStudentsDash)

	group.Put("/student/exam_student",
		auth.CheckRole(constants.RoleStudent, constants.RoleAdmin, constants.RoleSuperAdmin),
		ctrl.AddExamHistory)

	group.Get("/users/profile", ctrl.GetProfile)
	group.Put("/users/profile/:id", ctrl.UpdateProfile)
	group.Delete("/users/profile/:id", auth.CheckRole(constants.AdminAndAbove...), ctrl.DeleteProfile)
}
