package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examService "universe_backend/internals/features/exams/service"
	subjectModel "universe_backend/internals/features/exams/subjects/model"
	unitDTO "universe_backend/internals/features/exams/units/dto"
	unitModel "universe_backend/internals/features/exams/units/model"
	helper "universe_backend/internals/helpers"
)

type UnitController struct {
	DB *gorm.DB
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db}
}

var validate = validator.New()

// POST /api/exam/unit
func (h *UnitController) CreateUnit(c *fiber.Ctx) error {
	var req unitDTO.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	var created unitModel.UnitModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_id = ?", req.Subject).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}

		cnt = 0
		if err := tx.Model(&unitModel.UnitModel{}).
			Where("lower(unit_name) = lower(?) AND unit_subject_id = ?", req.UnitName, req.Subject).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "This Unit Already Exist")
		}

		created = req.ToModel()
		return tx.Create(&created).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Unit created successfully", fiber.Map{
		"unit": created,
	})
}

// GET /api/exam/unit
func (h *UnitController) GetUnits(c *fiber.Ctx) error {
	q := h.DB.Model(&unitModel.UnitModel{})
	if name := c.Query("unitName"); name != "" {
		q = q.Where("unit_name ILIKE ?", "%"+name+"%")
	}
	if subjectID := c.Query("subjectId"); subjectID != "" {
		q = q.Where("unit_subject_id = ?", subjectID)
	}
	if available := c.Query("available"); available != "" {
		q = q.Where("unit_available = ?", available == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var units []unitModel.UnitModel
	if err := q.Order("unit_created_at DESC").Find(&units).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Units retrieved successfully", fiber.Map{
		"units":         units,
		"totalCount":    total,
		"documentCount": len(units),
	})
}

// PUT /api/exam/unit/:id
func (h *UnitController) UpdateUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid unit id")
	}

	var req unitDTO.UpdateUnitRequest
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

	var m unitModel.UnitModel
	if err := h.DB.Where("unit_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Unit not found")
		}
		return err
	}

	if req.Subject != nil {
		var cnt int64
		if err := h.DB.Model(&subjectModel.SubjectModel{}).
			Where("subject_id = ?", *req.Subject).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Unit updated successfully", fiber.Map{
		"unit": m,
	})
}

// DELETE /api/exam/unit/:id
func (h *UnitController) DeleteUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid unit id")
	}

	var cnt int64
	if err := h.DB.Model(&unitModel.UnitModel{}).
		Where("unit_id = ?", id).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Unit not found")
	}

	if err := examService.DeleteUnitTree(h.DB, id); err != nil {
		return err
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Unit deleted successfully")
}
