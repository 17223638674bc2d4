package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDTO "universe_backend/internals/features/courses/dto"
	courseModel "universe_backend/internals/features/courses/model"
	subjectModel "universe_backend/internals/features/exams/subjects/model"
	userModel "universe_backend/internals/features/users/model"
	helper "universe_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

var validate = validator.New()

// POST /api/view/course
func (h *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	var created courseModel.CourseModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.TeacherModel{}).
			Where("teacher_id = ?", req.Teacher).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}

		cnt = 0
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_id = ?", req.Subject).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}

		cnt = 0
		if err := tx.Model(&courseModel.CourseModel{}).
			Where("lower(course_name) = lower(?) AND course_teacher_id = ? AND course_subject_id = ?",
				req.CourseName, req.Teacher, req.Subject).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"Course with the same name, teacher, and subject already exists")
		}

		m, err := req.ToModel()
		if err != nil {
			return err
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		created = m
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Course created successfully", fiber.Map{
		"course": created,
	})
}

// GET /api/view/course
func (h *CourseController) GetCourses(c *fiber.Ctx) error {
	q := h.DB.Model(&courseModel.CourseModel{})
	if name := c.Query("courseName"); name != "" {
		q = q.Where("course_name ILIKE ?", "%"+name+"%")
	}
	if institute := c.Query("instituteName"); institute != "" {
		q = q.Where("course_institute_name ILIKE ?", "%"+institute+"%")
	}
	if teacherID := c.Query("teacherId"); teacherID != "" {
		q = q.Where("course_teacher_id = ?", teacherID)
	}
	if subjectID := c.Query("subjectId"); subjectID != "" {
		q = q.Where("course_subject_id = ?", subjectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var courses []courseModel.CourseModel
	if err := q.Order("course_created_at DESC").Find(&courses).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Courses retrieved successfully", fiber.Map{
		"courses":       courses,
		"totalCount":    total,
		"documentCount": len(courses),
	})
}

// PUT /api/view/course/:id
func (h *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course id")
	}

	var req courseDTO.UpdateCourseRequest
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

	var m courseModel.CourseModel
	if err := h.DB.Where("course_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return err
	}

	if req.Teacher != nil {
		var cnt int64
		if err := h.DB.Model(&userModel.TeacherModel{}).
			Where("teacher_id = ?", *req.Teacher).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
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

	if err := req.Apply(&m); err != nil {
		return err
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Course updated successfully", fiber.Map{
		"course": m,
	})
}

// DELETE /api/view/course/:id
func (h *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course id")
	}

	res := h.DB.Where("course_id = ?", id).Delete(&courseModel.CourseModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Course deleted successfully")
}
