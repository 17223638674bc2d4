package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"universe_backend/internals/constants"
	userDTO "universe_backend/internals/features/users/dto"
	userModel "universe_backend/internals/features/users/model"
	userService "universe_backend/internals/features/users/service"
	helper "universe_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

// POST /api/auth/register
// Student registration, multipart with an optional profilePhoto file; the
// default avatar is stored when no photo is sent.
func (h *AuthController) RegisterStudent(c *fiber.Ctx) error {
	var req userDTO.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	photo := userModel.DefaultProfilePhotoURL
	publicID := ""
	if fileHeader, err := c.FormFile("profilePhoto"); err == nil && fileHeader != nil {
		img, err := helper.UploadImage("students", fileHeader)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to upload profile photo")
		}
		photo = img.URL
		publicID = img.PublicID
	}
	photoJSON, err := sonic.Marshal(helper.UploadedImage{URL: photo, PublicID: publicID})
	if err != nil {
		return err
	}

	hashed, err := userService.HashPassword(req.Password)
	if err != nil {
		return err
	}

	var created userModel.StudentModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.StudentModel{}).
			Where("student_phone_number = ?", req.PhoneNumber).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Phone number already exists")
		}
		created = req.ToModel(hashed)
		created.StudentProfilePhoto = datatypes.JSON(photoJSON)
		return tx.Create(&created).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Successfully Registered", fiber.Map{
		"student": created,
	})
}

// POST /api/auth/teacher/register (superAdmin/admin)
func (h *AuthController) RegisterTeacher(c *fiber.Ctx) error {
	var req userDTO.RegisterTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	hashed, err := userService.HashPassword(req.Password)
	if err != nil {
		return err
	}

	var created userModel.TeacherModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.TeacherModel{}).
			Where("teacher_phone_number = ?", req.PhoneNumber).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Phone number already exists")
		}

		created = req.ToModel(hashed)
		if req.Subject != "" {
			var subjectCnt int64
			if err := tx.Table("subjects").
				Where("subject_id = ?", req.Subject).Count(&subjectCnt).Error; err != nil {
				return err
			}
			if subjectCnt == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			subjectID := mustUUID(req.Subject)
			created.TeacherSubjectID = &subjectID
		}
		return tx.Create(&created).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Successfully Registered", fiber.Map{
		"teacher": created,
	})
}

// POST /api/auth/dashadmin/register (superAdmin/admin)
func (h *AuthController) RegisterDash(c *fiber.Ctx) error {
	var req userDTO.RegisterDashRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	hashed, err := userService.HashPassword(req.Password)
	if err != nil {
		return err
	}

	var created userModel.UserModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_phone_number = ?", req.PhoneNumber).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Phone number already exists")
		}
		created = req.ToModel(hashed)
		return tx.Create(&created).Error
	}); err != nil {
		return err
	}

	return helper.JsonWith(c, fiber.StatusCreated, "Successfully Registered", fiber.Map{
		"user": created,
	})
}

// POST /api/auth/login
// Student login.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	var student userModel.StudentModel
	if err := h.DB.Where("student_phone_number = ?", req.PhoneNumber).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid phone number or password")
		}
		return err
	}
	if !userService.CheckPasswordHash(student.StudentPassword, req.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid phone number or password")
	}

	token, err := helper.GenerateJWT(student.StudentID.String(), constants.RoleStudent, student.StudentUserName)
	if err != nil {
		return err
	}
	helper.SetAuthCookie(c, token)

	return helper.JsonWith(c, fiber.StatusOK, "Login Successfully", fiber.Map{
		"token":   token,
		"student": student,
	})
}

// POST /api/auth/dashadmin/login
// Dashboard login probes users first, then teachers.
func (h *AuthController) LoginDash(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, helper.ValidationMessage(err))
	}

	var user userModel.UserModel
	err := h.DB.Where("user_phone_number = ?", req.PhoneNumber).First(&user).Error
	if err == nil {
		if !userService.CheckPasswordHash(user.UserPassword, req.Password) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid phone number or password")
		}
		token, err := helper.GenerateJWT(user.UserID.String(), user.UserRole, user.UserName)
		if err != nil {
			return err
		}
		helper.SetAuthCookie(c, token)
		return helper.JsonWith(c, fiber.StatusOK, "Login Successfully", fiber.Map{
			"token": token,
			"user":  user,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var teacher userModel.TeacherModel
	if err := h.DB.Where("teacher_phone_number = ?", req.PhoneNumber).
		First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid phone number or password")
		}
		return err
	}
	if !userService.CheckPasswordHash(teacher.TeacherPassword, req.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid phone number or password")
	}

	token, err := helper.GenerateJWT(teacher.TeacherID.String(), constants.RoleTeacher, teacher.TeacherUserName)
	if err != nil {
		return err
	}
	helper.SetAuthCookie(c, token)

	return helper.JsonWith(c, fiber.StatusOK, "Login Successfully", fiber.Map{
		"token":   token,
		"teacher": teacher,
	})
}

// GET /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	helper.ClearAuthCookie(c)
	return helper.JsonMessage(c, fiber.StatusOK, "Successfully logged out")
}
