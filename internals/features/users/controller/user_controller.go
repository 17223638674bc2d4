package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	subjectModel "universe_backend/internals/features/exams/subjects/model"
	unitModel "universe_backend/internals/features/exams/units/model"
	userDTO "universe_backend/internals/features/users/dto"
	userModel "universe_backend/internals/features/users/model"
	userService "universe_backend/internals/features/users/service"
	helper "universe_backend/internals/helpers"
	"universe_backend/internals/middlewares/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func mustUUID(s string) uuid.UUID { return uuid.MustParse(s) }

// GET /api/ctrl/users/dash (superAdmin)
func (h *UserController) GetUsersDash(c *fiber.Ctx) error {
	q := h.DB.Model(&userModel.UserModel{})
	if name := c.Query("userName"); name != "" {
		q = q.Where("user_name ILIKE ?", "%"+name+"%")
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var users []userModel.UserModel
	if err := q.Order("user_created_at DESC").Find(&users).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Users retrieved successfully", fiber.Map{
		"users":         users,
		"totalCount":    total,
		"documentCount": len(users),
	})
}

// GET /api/ctrl/teachers/dash
func (h *UserController) GetTeachersDash(c *fiber.Ctx) error {
	q := h.DB.Model(&userModel.TeacherModel{})
	if name := c.Query("userName"); name != "" {
		q = q.Where("teacher_user_name ILIKE ?", "%"+name+"%")
	}
	if subjectID := c.Query("subjectId"); subjectID != "" {
		q = q.Where("teacher_subject_id = ?", subjectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var teachers []userModel.TeacherModel
	if err := q.Order("teacher_created_at DESC").Find(&teachers).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Teachers retrieved successfully", fiber.Map{
		"teachers":      teachers,
		"totalCount":    total,
		"documentCount": len(teachers),
	})
}

// GET /api/ctrl/students/dash
func (h *UserController) GetStudentsDash(c *fiber.Ctx) error {
	q := h.DB.Model(&userModel.StudentModel{})
	if name := c.Query("userName"); name != "" {
		q = q.Where("student_user_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var students []userModel.StudentModel
	if err := q.Order("student_created_at DESC").Find(&students).Error; err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusOK, "Students retrieved successfully", fiber.Map{
		"students":      students,
		"totalCount":    total,
		"documentCount": len(students),
	})
}

// Identities live in three tables keyed by role, so resolution is one
// lookup against the table the role names instead of a probe chain.
// superAdmin/admin/sales share the users table.
func roleTable(role string) (table, idColumn string, ok bool) {
	switch role {
	case constants.RoleSuperAdmin, constants.RoleAdmin, constants.RoleSales:
		return "users", "user_id", true
	case constants.RoleTeacher:
		return "teachers", "teacher_id", true
	case constants.RoleStudent:
		return "students", "student_id", true
	}
	return "", "", false
}

// targetRole resolves which identity table a profile operation addresses:
// the caller's own role for self-access, the role query param otherwise.
func targetRole(c *fiber.Ctx, id uuid.UUID) (string, error) {
	if role := c.Query("role"); role != "" {
		if _, _, ok := roleTable(role); !ok {
			return "", fiber.NewError(fiber.StatusBadRequest, "Invalid role")
		}
		return role, nil
	}
	if auth.UserID(c) == id.String() {
		return auth.Role(c), nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "Role is required")
}

// GET /api/ctrl/users/profile
func (h *UserController) GetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(auth.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Access denied. No token provided.")
	}

	switch auth.Role(c) {
	case constants.RoleTeacher:
		var teacher userModel.TeacherModel
		if err := h.DB.Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Profile not found")
			}
			return err
		}
		return helper.JsonWith(c, fiber.StatusOK, "Profile retrieved successfully", fiber.Map{
			"profile": teacher,
		})
	case constants.RoleStudent:
		var student userModel.StudentModel
		if err := h.DB.Where("student_id = ?", id).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Profile not found")
			}
			return err
		}
		return helper.JsonWith(c, fiber.StatusOK, "Profile retrieved successfully", fiber.Map{
			"profile": student,
		})
	default:
		var user userModel.UserModel
		if err := h.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Profile not found")
			}
			return err
		}
		return helper.JsonWith(c, fiber.StatusOK, "Profile retrieved successfully", fiber.Map{
			"profile": user,
		})
	}
}

// PUT /api/ctrl/users/profile/:id
func (h *UserController) UpdateProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid profile id")
	}

	// Owners update themselves; admins update anyone.
	callerRole := auth.Role(c)
	if callerRole != constants.RoleSuperAdmin && callerRole != constants.RoleAdmin &&
		auth.UserID(c) != id.String() {
		return fiber.NewError(fiber.StatusForbidden, "Access denied. Insufficient permissions.")
	}

	var req userDTO.UpdateProfileRequest
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

	role, err := targetRole(c, id)
	if err != nil {
		return err
	}

	var hashed string
	if req.Password != nil {
		hashed, err = userService.HashPassword(*req.Password)
		if err != nil {
			return err
		}
	}

	switch role {
	case constants.RoleTeacher:
		var teacher userModel.TeacherModel
		if err := h.DB.Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Profile not found")
			}
			return err
		}
		if req.UserName != nil {
			teacher.TeacherUserName = *req.UserName
		}
		if req.PhoneNumber != nil {
			teacher.TeacherPhoneNumber = *req.PhoneNumber
		}
		if req.Password != nil {
			teacher.TeacherPassword = hashed
		}
		if req.Gender != nil {
			teacher.TeacherGender = *req.Gender
		}
		if req.Age != nil {
			teacher.TeacherAge = *req.Age
		}
		if err := h.DB.Save(&teacher).Error; err != nil {
			return err
		}
		return helper.JsonWith(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{
			"profile": teacher,
		})
	case constants.RoleStudent:
		var student userModel.StudentModel
		if err := h.DB.Where("student_id = ?", id).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Profile not found")
			}
			return err
		}
		if req.UserName != nil {
			student.StudentUserName = *req.UserName
		}
		if req.PhoneNumber != nil {
			student.StudentPhoneNumber = *req.PhoneNumber
		}
		if req.Password != nil {
			student.StudentPassword = hashed
		}
		if req.Gender != nil {
			student.StudentGender = *req.Gender
		}
		if req.Age != nil {
			student.StudentAge = *req.Age
		}
		if fileHeader, ferr := c.FormFile("profilePhoto"); ferr == nil && fileHeader != nil {
			img, uerr := helper.UploadImage("students", fileHeader)
			if uerr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Failed to upload profile photo")
			}
			photoJSON, merr := sonic.Marshal(img)
			if merr != nil {
				return merr
			}
			student.StudentProfilePhoto = datatypes.JSON(photoJSON)
		}
		if err := h.DB.Save(&student).Error; err != nil {
			return err
		}
		return helper.JsonWith(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{
			"profile": student,
		})
	default:
		var user userModel.UserModel
		if err := h.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Profile not found")
			}
			return err
		}
		if req.UserName != nil {
			user.UserName = *req.UserName
		}
		if req.PhoneNumber != nil {
			user.UserPhoneNumber = *req.PhoneNumber
		}
		if req.Password != nil {
			user.UserPassword = hashed
		}
		if req.Gender != nil {
			user.UserGender = *req.Gender
		}
		if req.Age != nil {
			user.UserAge = *req.Age
		}
		if err := h.DB.Save(&user).Error; err != nil {
			return err
		}
		return helper.JsonWith(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{
			"profile": user,
		})
	}
}

// DELETE /api/ctrl/users/profile/:id
func (h *UserController) DeleteProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid profile id")
	}

	role, err := targetRole(c, id)
	if err != nil {
		return err
	}

	table, idColumn, _ := roleTable(role)
	res := h.DB.Exec("DELETE FROM "+table+" WHERE "+idColumn+" = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Profile not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Profile deleted successfully")
}

// PUT /api/ctrl/student/exam_student (student)
// Appends one exam result to the caller's history. The mark comes from the
// exam client; the server only checks the referenced subject and units.
func (h *UserController) AddExamHistory(c *fiber.Ctx) error {
	var req userDTO.AddExamHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	// Students may only append to their own record.
	if auth.Role(c) == constants.RoleStudent && req.Student != auth.UserID(c) {
		return fiber.NewError(fiber.StatusForbidden, "Access denied. Insufficient permissions.")
	}

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
			Where("unit_id IN ?", req.Units).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt != int64(len(req.Units)) {
			return fiber.NewError(fiber.StatusNotFound, "One or more units not found")
		}

		var student userModel.StudentModel
		if err := tx.Where("student_id = ?", req.Student).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student not found")
			}
			return err
		}

		var history []userModel.ExamHistoryEntry
		if len(student.StudentExamHistory) > 0 {
			if err := sonic.Unmarshal(student.StudentExamHistory, &history); err != nil {
				return err
			}
		}
		history = append(history, req.ToEntry())

		historyJSON, err := sonic.Marshal(history)
		if err != nil {
			return err
		}
		return tx.Model(&userModel.StudentModel{}).
			Where("student_id = ?", req.Student).
			Update("student_exam_history", datatypes.JSON(historyJSON)).Error
	}); err != nil {
		return err
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Exam history updated successfully")
}
