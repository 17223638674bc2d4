package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "universe_backend/internals/features/exams/classes/dto"
	classModel "universe_backend/internals/features/exams/classes/model"
	examService "universe_backend/internals/features/exams/service"
	helper "universe_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// POST /api/exam/class
func (h *ClassController) CreateClass(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	var created classModel.ClassModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("lower(class_name) = lower(?)", req.ClassName).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "This Class Already Exist")
		}
		created = req.ToModel()
		return tx.Create(&created).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Class created successfully", fiber.Map{
		"class": created,
	})
}

// GET /api/exam/class
func (h *ClassController) GetClasses(c *fiber.Ctx) error {
	q := h.DB.Model(&classModel.ClassModel{})
	if name := c.Query("className"); name != "" {
		q = q.Where("class_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var classes []classModel.ClassModel
	if err := q.Order("class_created_at DESC").Find(&classes).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Classes retrieved successfully", fiber.Map{
		"classes":       classes,
		"totalCount":    total,
		"documentCount": len(classes),
	})
}

// PUT /api/exam/class/:id
func (h *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	var req classDTO.UpdateClassRequest
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

	var m classModel.ClassModel
	if err := h.DB.Where("class_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return err
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Class updated successfully", fiber.Map{
		"class": m,
	})
}

// DELETE /api/exam/class/:id
// Removes the class and its whole subject/unit/question branch.
func (h *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	var cnt int64
	if err := h.DB.Model(&classModel.ClassModel{}).
		Where("class_id = ?", id).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	if err := examService.DeleteClassTree(h.DB, id); err != nil {
		return err
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Class deleted successfully")
}
