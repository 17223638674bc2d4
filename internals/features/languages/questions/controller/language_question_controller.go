package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	levelModel "universe_backend/internals/features/languages/levels/model"
	lqDTO "universe_backend/internals/features/languages/questions/dto"
	lqModel "universe_backend/internals/features/languages/questions/model"
	helper "universe_backend/internals/helpers"
)

// LanguageQuestionController serves one question variant; the five routes
// each mount an instance bound to their kind.
type LanguageQuestionController struct {
	DB   *gorm.DB
	Kind string
}

func NewLanguageQuestionController(db *gorm.DB, kind string) *LanguageQuestionController {
	return &LanguageQuestionController{DB: db, Kind: kind}
}

var validate = validator.New()

// POST /api/language/{empty,mean,listen,readatalk,ranking}
func (h *LanguageQuestionController) CreateQuestion(c *fiber.Ctx) error {
	var m lqModel.LanguageQuestionModel

	if lqModel.HasAnswerBlock(h.Kind) {
		var req lqDTO.CreateWordQuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		req.Normalize()
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
		}
		m = req.ToModel(h.Kind)
	} else {
		var req lqDTO.CreateTextQuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		req.Normalize()
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
		}
		m = req.ToModel(h.Kind)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&levelModel.LevelModel{}).
			Where("level_id = ?", m.LqLevelID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Level not found")
		}
		return tx.Create(&m).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Question created successfully", fiber.Map{
		"question": m,
	})
}

// GET /api/language/{empty,mean,listen,readatalk,ranking}
func (h *LanguageQuestionController) GetQuestions(c *fiber.Ctx) error {
	q := h.DB.Model(&lqModel.LanguageQuestionModel{}).Where("lq_kind = ?", h.Kind)
	if levelID := c.Query("levelId"); levelID != "" {
		q = q.Where("lq_level_id = ?", levelID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var questions []lqModel.LanguageQuestionModel
	if err := q.Order("lq_created_at DESC").Find(&questions).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Questions retrieved successfully", fiber.Map{
		"questions":     questions,
		"totalCount":    total,
		"documentCount": len(questions),
	})
}

// PUT /api/language/{empty,mean,listen,readatalk,ranking}/:id
func (h *LanguageQuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question id")
	}

	var m lqModel.LanguageQuestionModel
	if err := h.DB.Where("lq_id = ? AND lq_kind = ?", id, h.Kind).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return err
	}

	if lqModel.HasAnswerBlock(h.Kind) {
		var req lqDTO.UpdateWordQuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		req.Normalize()
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
		}
		if !req.HasChanges() {
			return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
		}
		req.Apply(&m)
	} else {
		var req lqDTO.UpdateTextQuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		req.Normalize()
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
		}
		if !req.HasChanges() {
			return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
		}
		req.Apply(&m)
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Question updated successfully", fiber.Map{
		"question": m,
	})
}

// DELETE /api/language/{empty,mean,listen,readatalk,ranking}/:id
func (h *LanguageQuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question id")
	}

	res := h.DB.Where("lq_id = ? AND lq_kind = ?", id, h.Kind).
		Delete(&lqModel.LanguageQuestionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Question deleted successfully")
}
