package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	languageDTO "universe_backend/internals/features/languages/languages/dto"
	languageModel "universe_backend/internals/features/languages/languages/model"
	levelModel "universe_backend/internals/features/languages/levels/model"
	lqModel "universe_backend/internals/features/languages/questions/model"
	helper "universe_backend/internals/helpers"
)

type LanguageController struct {
	DB *gorm.DB
}

func NewLanguageController(db *gorm.DB) *LanguageController {
	return &LanguageController{DB: db}
}

var validate = validator.New()

// POST /api/language/language
func (h *LanguageController) CreateLanguage(c *fiber.Ctx) error {
	var req languageDTO.CreateLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	var created languageModel.LanguageModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&languageModel.LanguageModel{}).
			Where("lower(language_name) = lower(?)", req.LanguageName).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "This Language Already Exist")
		}
		created = req.ToModel()
		return tx.Create(&created).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Language created successfully", fiber.Map{
		"language": created,
	})
}

// GET /api/language/language
func (h *LanguageController) GetLanguages(c *fiber.Ctx) error {
	q := h.DB.Model(&languageModel.LanguageModel{})
	if name := c.Query("languageName"); name != "" {
		q = q.Where("language_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var languages []languageModel.LanguageModel
	if err := q.Order("language_created_at DESC").Find(&languages).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Languages retrieved successfully", fiber.Map{
		"languages":     languages,
		"totalCount":    total,
		"documentCount": len(languages),
	})
}

// PUT /api/language/language/:id
func (h *LanguageController) UpdateLanguage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid language id")
	}

	var req languageDTO.UpdateLanguageRequest
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

	var m languageModel.LanguageModel
	if err := h.DB.Where("language_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Language not found")
		}
		return err
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Language updated successfully", fiber.Map{
		"language": m,
	})
}

// DELETE /api/language/language/:id
// Levels and their questions go with the language, mirroring the exam-side
// tree deletes.
func (h *LanguageController) DeleteLanguage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid language id")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var levelIDs []uuid.UUID
		if err := tx.Model(&levelModel.LevelModel{}).
			Where("level_language_id = ?", id).
			Pluck("level_id", &levelIDs).Error; err != nil {
			return err
		}

		if len(levelIDs) > 0 {
			if err := tx.Where("lq_level_id IN ?", levelIDs).
				Delete(&lqModel.LanguageQuestionModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("level_id IN ?", levelIDs).
				Delete(&levelModel.LevelModel{}).Error; err != nil {
				return err
			}
		}

		res := tx.Where("language_id = ?", id).Delete(&languageModel.LanguageModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Language not found")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Language deleted successfully")
}
