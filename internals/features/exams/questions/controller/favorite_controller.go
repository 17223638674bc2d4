package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"universe_backend/internals/constants"
	questionDTO "universe_backend/internals/features/exams/questions/dto"
	questionModel "universe_backend/internals/features/exams/questions/model"
	helper "universe_backend/internals/helpers"
	"universe_backend/internals/middlewares/auth"
)

// POST /api/exam/fav (teacher or student)
// Flips the question in the caller's favorites. The flip is one CASE
// statement so concurrent toggles of the same question cannot interleave
// into a duplicate entry; RETURNING reports the post-update membership.
func (h *QuestionController) ToggleFavorite(c *fiber.Ctx) error {
	var req questionDTO.FavoriteToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	callerID, err := uuid.Parse(auth.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Access denied. No token provided.")
	}

	var cnt int64
	if err := h.DB.Model(&questionModel.QuestionModel{}).
		Where("question_id = ?", req.Question).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Question not found")
	}

	var table, column, idColumn string
	switch auth.Role(c) {
	case constants.RoleTeacher:
		table, column, idColumn = "teachers", "teacher_favorite_question_ids", "teacher_id"
	case constants.RoleStudent:
		table, column, idColumn = "students", "student_favorite_question_ids", "student_id"
	default:
		return fiber.NewError(fiber.StatusForbidden, "Access denied. Insufficient permissions.")
	}

	var added bool
	res := h.DB.Raw(
		"UPDATE "+table+" SET "+column+" = CASE WHEN ? = ANY("+column+") THEN array_remove("+column+", ?) ELSE array_append("+column+", ?) END"+
			" WHERE "+idColumn+" = ? RETURNING ? = ANY("+column+")",
		req.Question, req.Question, req.Question, callerID, req.Question,
	).Scan(&added)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Profile not found")
	}

	if added {
		return helper.JsonMessage(c, fiber.StatusOK, "Question added to favorites")
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Question removed from favorites")
}
