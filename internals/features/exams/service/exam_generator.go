package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	examModel "universe_backend/internals/features/exams/exams/model"
	questionModel "universe_backend/internals/features/exams/questions/model"
	unitModel "universe_backend/internals/features/exams/units/model"
	userModel "universe_backend/internals/features/users/model"
)

// GenerateExam samples n random questions from the requested units for one
// teacher and difficulty, records the exam, and returns it with the sampled
// questions. Every unit must exist and be owned by the student before any
// sampling happens.
func GenerateExam(db *gorm.DB, studentID uuid.UUID, unitIDs []uuid.UUID, teacherID uuid.UUID, difficulty string, n int) (*examModel.ExamModel, []questionModel.QuestionModel, error) {
	var exam examModel.ExamModel
	var questions []questionModel.QuestionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var units []unitModel.UnitModel
		if err := tx.Where("unit_id IN ?", unitIDs).Find(&units).Error; err != nil {
			return err
		}
		if len(units) != len(unitIDs) {
			return fiber.NewError(fiber.StatusNotFound, "One or more units not found")
		}

		var teacher userModel.TeacherModel
		if err := tx.Where("teacher_id = ?", teacherID).First(&teacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
			}
			return err
		}

		var student userModel.StudentModel
		if err := tx.Where("student_id = ?", studentID).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student not found")
			}
			return err
		}

		// Freely available units need no purchase; everything else must be
		// in the student's purchased set.
		for _, u := range units {
			if !u.UnitAvailable && !student.HasPurchasedUnit(u.UnitID) {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Unit %s is not available. Please purchase it first.", u.UnitName))
			}
		}

		if err := tx.Where("question_unit_id IN ? AND question_teacher_id = ? AND question_difficulty = ?",
			unitIDs, teacherID, difficulty).
			Order("random()").
			Limit(n).
			Find(&questions).Error; err != nil {
			return err
		}
		if len(questions) < n {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Not enough questions available. Found only %d", len(questions)))
		}

		unitStrs := make(pq.StringArray, 0, len(unitIDs))
		for _, id := range unitIDs {
			unitStrs = append(unitStrs, id.String())
		}
		questionStrs := make(pq.StringArray, 0, len(questions))
		for _, q := range questions {
			questionStrs = append(questionStrs, q.QuestionID.String())
		}

		exam = examModel.ExamModel{
			ExamUnitIDs:           unitStrs,
			ExamTeacherID:         teacherID,
			ExamDifficulty:        difficulty,
			ExamNumberOfQuestions: n,
			ExamQuestionIDs:       questionStrs,
			ExamCreatedBy:         studentID,
		}
		return tx.Create(&exam).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &exam, questions, nil
}
