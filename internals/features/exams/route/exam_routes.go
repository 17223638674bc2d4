package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	classController "universe_backend/internals/features/exams/classes/controller"
	commentController "universe_backend/internals/features/exams/comments/controller"
	examController "universe_backend/internals/features/exams/exams/controller"
	questionController "universe_backend/internals/features/exams/questions/controller"
	subjectController "universe_backend/internals/features/exams/subjects/controller"
	unitController "universe_backend/internals/features/exams/units/controller"
	"universe_backend/internals/middlewares/auth"
)

// ExamRoutes mounts /api/exam: the content tree, comments, favorites and
// the generator.
func ExamRoutes(api fiber.Router, db *gorm.DB) {
	classes := classController.NewClassController(db)
	subjects := subjectController.NewSubjectController(db)
	units := unitController.NewUnitController(db)
	questions := questionController.NewQuestionController(db)
	comments := commentController.NewCommentController(db)
	exams := examController.NewExamController(db)

	group := api.Group("/exam", auth.VerifyToken())
	adminOnly := auth.CheckRole(constants.AdminAndAbove...)
	contentAuthors := auth.CheckRole(constants.RoleSuperAdmin, constants.RoleAdmin, constants.RoleTeacher)

	group.Post("/class", adminOnly, classes.CreateClass)
	group.Get("/class", classes.GetClasses)
	group.Put("/class/:id", adminOnly, classes.UpdateClass)
	group.Delete("/class/:id", adminOnly, classes.DeleteClass)

	group.Post("/subject", adminOnly, subjects.CreateSubject)
	group.Get("/subject", subjects.GetSubjects)
	group.Put("/subject/:id", adminOnly, subjects.UpdateSubject)
	group.Delete("/subject/:id", adminOnly, subjects.DeleteSubject)

	group.Post("/unit", adminOnly, units.CreateUnit)
	group.Get("/unit", units.GetUnits)
	group.Put("/unit/:id", adminOnly, units.UpdateUnit)
	group.Delete("/unit/:id", adminOnly, units.DeleteUnit)

	group.Post("/question", contentAuthors, questions.CreateQuestion)
	group.Get("/question", questions.GetQuestions)
	group.Put("/question/:id", contentAuthors, questions.UpdateQuestion)
	group.Delete("/question/:id", contentAuthors, questions.DeleteQuestion)

	group.Post("/comment", auth.CheckRole(constants.RoleStudent), comments.CreateComment)
	group.Get("/comment", comments.GetComments)
	group.Put("/comment/:id", comments.UpdateComment)
	group.Delete("/comment/:id", comments.DeleteComment)

	group.Post("/fav",
		auth.CheckRole(constants.RoleTeacher, constants.RoleStudent),
		questions.ToggleFavorite)

	group.Post("/examgenerate", auth.CheckRole(constants.RoleStudent), exams.GenerateExam)
	group.Get("/examgenerate/:id", exams.GetExam)
}
