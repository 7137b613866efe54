package bootstrap

import (
	"log"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.ConnectSubmission{},
		&model.MatrimonialProfile{},
		&model.BlogCategory{},
		&model.BlogPost{},
		&model.Comment{},
		&model.NotificationRecipient{},
	)
}

// SeedAdminUser creates a development main_admin account when none exists.
// Only called for APP_ENV=development.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("role = ?", model.RoleMainAdmin).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Main admin already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		Name:         "Administrator",
		Email:        "admin@ravidassiaabroad.com",
		PasswordHash: string(hashedPasswordBytes),
		Role:         model.RoleMainAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("✅ Main admin seeded successfully")
	log.Println("   Email: admin@ravidassiaabroad.com")
	log.Println("   Password: admin123")

	return nil
}
