package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "universe_backend/internals/features/exams/classes/model"
	commentModel "universe_backend/internals/features/exams/comments/model"
	questionModel "universe_backend/internals/features/exams/questions/model"
	subjectModel "universe_backend/internals/features/exams/subjects/model"
	unitModel "universe_backend/internals/features/exams/units/model"
	userModel "universe_backend/internals/features/users/model"
)

// Content forms a strict tree (class > subject > unit > question) with no
// database-level foreign keys, so deletes walk the tree inside a single
// transaction. Teachers referencing a removed subject are detached, not
// deleted.

func DeleteClassTree(db *gorm.DB, classID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var subjectIDs []uuid.UUID
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_class_id = ?", classID).
			Pluck("subject_id", &subjectIDs).Error; err != nil {
			return err
		}

		if len(subjectIDs) > 0 {
			if err := deleteSubjectBranches(tx, subjectIDs); err != nil {
				return err
			}
		}

		return tx.Where("class_id = ?", classID).
			Delete(&classModel.ClassModel{}).Error
	})
}

func DeleteSubjectTree(db *gorm.DB, subjectID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return deleteSubjectBranches(tx, []uuid.UUID{subjectID})
	})
}

func DeleteUnitTree(db *gorm.DB, unitID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return deleteUnitBranches(tx, []uuid.UUID{unitID})
	})
}

func deleteSubjectBranches(tx *gorm.DB, subjectIDs []uuid.UUID) error {
	var unitIDs []uuid.UUID
	if err := tx.Model(&unitModel.UnitModel{}).
		Where("unit_subject_id IN ?", subjectIDs).
		Pluck("unit_id", &unitIDs).Error; err != nil {
		return err
	}

	if len(unitIDs) > 0 {
		if err := deleteUnitBranches(tx, unitIDs); err != nil {
			return err
		}
	}

	// Detach teachers so the account survives the subject.
	if err := tx.Model(&userModel.TeacherModel{}).
		Where("teacher_subject_id IN ?", subjectIDs).
		Update("teacher_subject_id", nil).Error; err != nil {
		return err
	}

	return tx.Where("subject_id IN ?", subjectIDs).
		Delete(&subjectModel.SubjectModel{}).Error
}

func deleteUnitBranches(tx *gorm.DB, unitIDs []uuid.UUID) error {
	var questionIDs []uuid.UUID
	if err := tx.Model(&questionModel.QuestionModel{}).
		Where("question_unit_id IN ?", unitIDs).
		Pluck("question_id", &questionIDs).Error; err != nil {
		return err
	}

	if len(questionIDs) > 0 {
		if err := tx.Where("comment_question_id IN ?", questionIDs).
			Delete(&commentModel.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN ?", questionIDs).
			Delete(&questionModel.QuestionModel{}).Error; err != nil {
			return err
		}
	}

	return tx.Where("unit_id IN ?", unitIDs).
		Delete(&unitModel.UnitModel{}).Error
}
