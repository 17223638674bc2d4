package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	commentModel "universe_backend/internals/features/exams/comments/model"
	questionDTO "universe_backend/internals/features/exams/questions/dto"
	questionModel "universe_backend/internals/features/exams/questions/model"
	unitModel "universe_backend/internals/features/exams/units/model"
	userModel "universe_backend/internals/features/users/model"
	helper "universe_backend/internals/helpers"
	"universe_backend/internals/middlewares/auth"
)

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

var validate = validator.New()

// POST /api/exam/question
// Accepts JSON or multipart. In multipart form, requests and explanation
// arrive as JSON strings next to the optional photo and imageQ files.
func (h *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	req, photoFile, explanationFile, err := parseCreateQuestion(c)
	if err != nil {
		return err
	}

	req.Normalize()
	if err := validate.Struct(*req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}
	if err := req.Validate(explanationFile != nil); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	teacherID, err := h.resolveTeacherID(c, req.Teacher)
	if err != nil {
		return err
	}

	m, err := req.ToModel(teacherID)
	if err != nil {
		return err
	}

	if photoFile != nil {
		img, err := helper.UploadImage("questions", photoFile)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to upload question photo")
		}
		photoJSON, err := sonic.Marshal(img)
		if err != nil {
			return err
		}
		m.QuestionPhoto = datatypes.JSON(photoJSON)
	}

	if explanationFile != nil {
		img, err := helper.UploadImage("explanations", explanationFile)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to upload explanation image")
		}
		explanationJSON, err := sonic.Marshal(questionModel.Explanation{
			Type:    questionModel.ExplanationImage,
			Content: img.URL,
		})
		if err != nil {
			return err
		}
		m.QuestionExplanation = datatypes.JSON(explanationJSON)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&unitModel.UnitModel{}).
			Where("unit_id = ?", m.QuestionUnitID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Unit not found")
		}

		cnt = 0
		if err := tx.Model(&questionModel.QuestionModel{}).
			Where("question_unit_id = ? AND lower(question_text) = lower(?)", m.QuestionUnitID, m.QuestionText).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "This Question Already Exist")
		}

		return tx.Create(&m).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Question created successfully", fiber.Map{
		"question": m,
	})
}

// GET /api/exam/question
func (h *QuestionController) GetQuestions(c *fiber.Ctx) error {
	q := h.DB.Model(&questionModel.QuestionModel{})
	if unitID := c.Query("unitId"); unitID != "" {
		q = q.Where("question_unit_id = ?", unitID)
	}
	if teacherID := c.Query("teacherId"); teacherID != "" {
		q = q.Where("question_teacher_id = ?", teacherID)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		q = q.Where("question_difficulty = ?", difficulty)
	}
	if qt := c.Query("questionType"); qt != "" {
		q = q.Where("question_type = ?", qt)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var questions []questionModel.QuestionModel
	if err := q.Order("question_created_at DESC").Find(&questions).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Questions retrieved successfully", fiber.Map{
		"questions":     questions,
		"totalCount":    total,
		"documentCount": len(questions),
	})
}

// PUT /api/exam/question/:id
func (h *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question id")
	}

	var req questionDTO.UpdateQuestionRequest
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

	var m questionModel.QuestionModel
	if err := h.DB.Where("question_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return err
	}

	effectiveType := m.QuestionType
	if req.Type != nil {
		effectiveType = *req.Type
	}
	if err := req.Validate(effectiveType, false); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := req.Apply(&m); err != nil {
		return err
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Question updated successfully", fiber.Map{
		"question": m,
	})
}

// DELETE /api/exam/question/:id
func (h *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question id")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("question_id = ?", id).Delete(&questionModel.QuestionModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return tx.Where("comment_question_id = ?", id).
			Delete(&commentModel.CommentModel{}).Error
	}); err != nil {
		return err
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Question deleted successfully")
}

// resolveTeacherID attributes the question: the request's teacher field
// when present, else the caller when the caller is a teacher.
func (h *QuestionController) resolveTeacherID(c *fiber.Ctx, raw string) (uuid.UUID, error) {
	if raw == "" && auth.Role(c) == "teacher" {
		raw = auth.UserID(c)
	}
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, `"teacher" is required`)
	}
	teacherID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid teacher id")
	}

	var cnt int64
	if err := h.DB.Model(&userModel.TeacherModel{}).
		Where("teacher_id = ?", teacherID).Count(&cnt).Error; err != nil {
		return uuid.Nil, err
	}
	if cnt == 0 {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}
	return teacherID, nil
}

func parseCreateQuestion(c *fiber.Ctx) (*questionDTO.CreateQuestionRequest, *multipart.FileHeader, *multipart.FileHeader, error) {
	var req questionDTO.CreateQuestionRequest

	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := c.BodyParser(&req); err != nil {
			return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		return &req, nil, nil, nil
	}

	req.Unit = c.FormValue("unit")
	req.Teacher = c.FormValue("teacher")
	req.Text = c.FormValue("text")
	req.Difficulty = c.FormValue("difficulty")
	req.Type = c.FormValue("type")

	if raw := c.FormValue("explanation"); raw != "" {
		if err := sonic.UnmarshalString(raw, &req.Explanation); err != nil {
			return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid explanation format")
		}
	}
	if raw := c.FormValue("requests"); raw != "" {
		if err := sonic.UnmarshalString(raw, &req.Requests); err != nil {
			return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid requests format")
		}
	}

	photoFile, err := c.FormFile("photo")
	if err != nil {
		photoFile = nil
	}
	explanationFile, err := c.FormFile("imageQ")
	if err != nil {
		explanationFile = nil
	}
	return &req, photoFile, explanationFile, nil
}
