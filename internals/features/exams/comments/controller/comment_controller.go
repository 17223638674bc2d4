package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	commentDTO "universe_backend/internals/features/exams/comments/dto"
	commentModel "universe_backend/internals/features/exams/comments/model"
	questionModel "universe_backend/internals/features/exams/questions/model"
	helper "universe_backend/internals/helpers"
	"universe_backend/internals/middlewares/auth"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

var validate = validator.New()

// POST /api/exam/comment (student)
func (h *CommentController) CreateComment(c *fiber.Ctx) error {
	var req commentDTO.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	studentID, err := uuid.Parse(auth.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Access denied. No token provided.")
	}

	var created commentModel.CommentModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&questionModel.QuestionModel{}).
			Where("question_id = ?", req.Question).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		created = req.ToModel(studentID)
		return tx.Create(&created).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Comment created successfully", fiber.Map{
		"comment": created,
	})
}

// GET /api/exam/comment
func (h *CommentController) GetComments(c *fiber.Ctx) error {
	q := h.DB.Model(&commentModel.CommentModel{})
	if questionID := c.Query("questionId"); questionID != "" {
		q = q.Where("comment_question_id = ?", questionID)
	}
	if studentID := c.Query("studentId"); studentID != "" {
		q = q.Where("comment_student_id = ?", studentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var comments []commentModel.CommentModel
	if err := q.Order("comment_created_at DESC").Find(&comments).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Comments retrieved successfully", fiber.Map{
		"comments":      comments,
		"totalCount":    total,
		"documentCount": len(comments),
	})
}

// PUT /api/exam/comment/:id
// Only the author may edit.
func (h *CommentController) UpdateComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid comment id")
	}

	var req commentDTO.UpdateCommentRequest
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

	var m commentModel.CommentModel
	if err := h.DB.Where("comment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Comment not found")
		}
		return err
	}

	if m.CommentStudentID.String() != auth.UserID(c) {
		return fiber.NewError(fiber.StatusForbidden, "Access denied. Insufficient permissions.")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Comment updated successfully", fiber.Map{
		"comment": m,
	})
}

// DELETE /api/exam/comment/:id
// Author or a dashboard role may delete.
func (h *CommentController) DeleteComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid comment id")
	}

	var m commentModel.CommentModel
	if err := h.DB.Where("comment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Comment not found")
		}
		return err
	}

	role := auth.Role(c)
	isAdmin := role == constants.RoleSuperAdmin || role == constants.RoleAdmin
	if !isAdmin && m.CommentStudentID.String() != auth.UserID(c) {
		return fiber.NewError(fiber.StatusForbidden, "Access denied. Insufficient permissions.")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return err
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Comment deleted successfully")
}
