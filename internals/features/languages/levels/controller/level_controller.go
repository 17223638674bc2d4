package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	languageModel "universe_backend/internals/features/languages/languages/model"
	levelDTO "universe_backend/internals/features/languages/levels/dto"
	levelModel "universe_backend/internals/features/languages/levels/model"
	lqModel "universe_backend/internals/features/languages/questions/model"
	helper "universe_backend/internals/helpers"
)

type LevelController struct {
	DB *gorm.DB
}

func NewLevelController(db *gorm.DB) *LevelController {
	return &LevelController{DB: db}
}

var validate = validator.New()

// POST /api/language/level
func (h *LevelController) CreateLevel(c *fiber.Ctx) error {
	var req levelDTO.CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	var created levelModel.LevelModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&languageModel.LanguageModel{}).
			Where("language_id = ?", req.Language).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Language not found")
		}

		cnt = 0
		if err := tx.Model(&levelModel.LevelModel{}).
			Where("level_language_id = ? AND level_number = ?", req.Language, req.Number).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "This Level Already Exist")
		}

		created = req.ToModel()
		return tx.Create(&created).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Level created successfully", fiber.Map{
		"level": created,
	})
}

// GET /api/language/level
func (h *LevelController) GetLevels(c *fiber.Ctx) error {
	q := h.DB.Model(&levelModel.LevelModel{})
	if languageID := c.Query("languageId"); languageID != "" {
		q = q.Where("level_language_id = ?", languageID)
	}
	if available := c.Query("available"); available != "" {
		q = q.Where("level_available = ?", available == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var levels []levelModel.LevelModel
	if err := q.Order("level_number ASC").Find(&levels).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Levels retrieved successfully", fiber.Map{
		"levels":        levels,
		"totalCount":    total,
		"documentCount": len(levels),
	})
}

// PUT /api/language/level/:id
func (h *LevelController) UpdateLevel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid level id")
	}

	var req levelDTO.UpdateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	if !req.HasChanges() {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	var m levelModel.LevelModel
	if err := h.DB.Where("level_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Level not found")
		}
		return err
	}

	if req.Number != nil && *req.Number != m.LevelNumber {
		var cnt int64
		if err := h.DB.Model(&levelModel.LevelModel{}).
			Where("level_language_id = ? AND level_number = ?", m.LevelLanguageID, *req.Number).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "This Level Already Exist")
		}
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Level updated successfully", fiber.Map{
		"level": m,
	})
}

// DELETE /api/language/level/:id
func (h *LevelController) DeleteLevel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid level id")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lq_level_id = ?", id).
			Delete(&lqModel.LanguageQuestionModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("level_id = ?", id).Delete(&levelModel.LevelModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Level not found")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Level deleted successfully")
}
