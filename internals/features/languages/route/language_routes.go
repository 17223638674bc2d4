package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	languageController "universe_backend/internals/features/languages/languages/controller"
	levelController "universe_backend/internals/features/languages/levels/controller"
	lqController "universe_backend/internals/features/languages/questions/controller"
	lqModel "universe_backend/internals/features/languages/questions/model"
	"universe_backend/internals/middlewares/auth"
)

// LanguageRoutes mounts /api/language: languages, levels and the five
// question variants, each variant on its own path.
func LanguageRoutes(api fiber.Router, db *gorm.DB) {
	languages := languageController.NewLanguageController(db)
	levels := levelController.NewLevelController(db)

	group := api.Group("/language", auth.VerifyToken())
	adminOnly := auth.CheckRole(constants.AdminAndAbove...)

	group.Post("/language", adminOnly, languages.CreateLanguage)
	group.Get("/language", languages.GetLanguages)
	group.Put("/language/:id", adminOnly, languages.UpdateLanguage)
	group.Delete("/language/:id", adminOnly, languages.DeleteLanguage)

	group.Post("/level", adminOnly, levels.CreateLevel)
	group.Get("/level", levels.GetLevels)
	group.Put("/level/:id", adminOnly, levels.UpdateLevel)
	group.Delete("/level/:id", adminOnly, levels.DeleteLevel)

	variants := map[string]string{
		"/empty":     lqModel.KindEmpty,
		"/mean":      lqModel.KindMean,
		"/listen":    lqModel.KindListen,
		"/readatalk": lqModel.KindReadTalk,
		"/ranking":   lqModel.KindRanking,
	}
	for path, kind := range variants {
		ctrl := lqController.NewLanguageQuestionController(db, kind)
		group.Post(path, adminOnly, ctrl.CreateQuestion)
		group.Get(path, ctrl.GetQuestions)
		group.Put(path+"/:id", adminOnly, ctrl.UpdateQuestion)
		group.Delete(path+"/:id", adminOnly, ctrl.DeleteQuestion)
	}
}
