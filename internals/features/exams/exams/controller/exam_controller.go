package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examDTO "universe_backend/internals/features/exams/exams/dto"
	examModel "universe_backend/internals/features/exams/exams/model"
	questionModel "universe_backend/internals/features/exams/questions/model"
	examService "universe_backend/internals/features/exams/service"
	helper "universe_backend/internals/helpers"
	"universe_backend/internals/middlewares/auth"
)

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

var validate = validator.New()

// POST /api/exam/examgenerate (student)
func (h *ExamController) GenerateExam(c *fiber.Ctx) error {
	var req examDTO.GenerateExamRequest
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

	unitIDs := make([]uuid.UUID, 0, len(req.Units))
	for _, u := range req.Units {
		unitIDs = append(unitIDs, uuid.MustParse(u))
	}

	exam, questions, err := examService.GenerateExam(
		h.DB, studentID, unitIDs, uuid.MustParse(req.Teacher),
		req.Difficulty, req.NumberOfQuestions,
	)
	if err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Exam generated successfully", fiber.Map{
		"exam":      exam,
		"questions": questions,
	})
}

// GET /api/exam/examgenerate/:id
// Exams are immutable, so the read returns the stored record together with
// the questions it sampled.
func (h *ExamController) GetExam(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam id")
	}

	var exam examModel.ExamModel
	if err := h.DB.Where("exam_id = ?", id).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return err
	}

	var questions []questionModel.QuestionModel
	if len(exam.ExamQuestionIDs) > 0 {
		if err := h.DB.Where("question_id IN ?", []string(exam.ExamQuestionIDs)).
			Find(&questions).Error; err != nil {
			return err
		}
	}

	return helper.JsonWith(c, fiber.StatusOK, "Exam retrieved successfully", fiber.Map{
		"exam":      exam,
		"questions": questions,
	})
}
