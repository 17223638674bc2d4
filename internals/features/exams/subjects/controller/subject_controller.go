package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "universe_backend/internals/features/exams/classes/model"
	examService "universe_backend/internals/features/exams/service"
	subjectDTO "universe_backend/internals/features/exams/subjects/dto"
	subjectModel "universe_backend/internals/features/exams/subjects/model"
	helper "universe_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

// POST /api/exam/subject
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	var created subjectModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("class_id = ?", req.Class).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}

		cnt = 0
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("lower(subject_name) = lower(?) AND subject_class_id = ?", req.SubjectName, req.Class).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "This Subject Already Exist")
		}

		created = req.ToModel()
		return tx.Create(&created).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Subject created successfully", fiber.Map{
		"subject": created,
	})
}

// GET /api/exam/subject
func (h *SubjectController) GetSubjects(c *fiber.Ctx) error {
	q := h.DB.Model(&subjectModel.SubjectModel{})
	if name := c.Query("subjectName"); name != "" {
		q = q.Where("subject_name ILIKE ?", "%"+name+"%")
	}
	if classID := c.Query("classId"); classID != "" {
		q = q.Where("subject_class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var subjects []subjectModel.SubjectModel
	if err := q.Order("subject_created_at DESC").Find(&subjects).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Subjects retrieved successfully", fiber.Map{
		"subjects":      subjects,
		"totalCount":    total,
		"documentCount": len(subjects),
	})
}

// PUT /api/exam/subject/:id
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	var req subjectDTO.UpdateSubjectRequest
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

	var m subjectModel.SubjectModel
	if err := h.DB.Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return err
	}

	if req.Class != nil {
		var cnt int64
		if err := h.DB.Model(&classModel.ClassModel{}).
			Where("class_id = ?", *req.Class).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Subject updated successfully", fiber.Map{
		"subject": m,
	})
}

// DELETE /api/exam/subject/:id
// Removes the subject branch and detaches teachers assigned to it.
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	var cnt int64
	if err := h.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", id).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subject not found")
	}

	if err := examService.DeleteSubjectTree(h.DB, id); err != nil {
		return err
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Subject deleted successfully")
}
