package seeds

import (
	"log"

	"gorm.io/gorm"

	"universe_backend/internals/configs"
	"universe_backend/internals/constants"
	userModel "universe_backend/internals/features/users/model"
	userService "universe_backend/internals/features/users/service"
)

// RunAllSeeds provisions the records the API cannot create through its own
// endpoints. Today that is only the superAdmin account: registration never
// mints one.
func RunAllSeeds(db *gorm.DB) {
	seedSuperAdmin(db)
}

func seedSuperAdmin(db *gorm.DB) {
	phone := configs.GetEnv("SUPERADMIN_PHONE", "")
	password := configs.GetEnv("SUPERADMIN_PASSWORD", "")
	if phone == "" || password == "" {
		log.Println("[SEED] superAdmin credentials not configured, skipping")
		return
	}

	var cnt int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_role = ?", constants.RoleSuperAdmin).
		Count(&cnt).Error; err != nil {
		log.Printf("[SEED] superAdmin lookup failed: %v", err)
		return
	}
	if cnt > 0 {
		return
	}

	hashed, err := userService.HashPassword(password)
	if err != nil {
		log.Printf("[SEED] superAdmin password hash failed: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName:        configs.GetEnv("SUPERADMIN_NAME", "Super Admin"),
		UserPhoneNumber: phone,
		UserPassword:    hashed,
		UserGender:      "male",
		UserAge:         30,
		UserRole:        constants.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED] superAdmin create failed: %v", err)
		return
	}
	log.Println("[SEED] superAdmin account created")
}
