package config

import (
	"fmt"
	"log"

	"nexum-supply/internal/adapters/persistence/models"
	"nexum-supply/internal/core/domain"
	"nexum-supply/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedAdminUser creates the default admin account when no admin exists.
// The password comes from ADMIN_PASSWORD; without it a dev-only default
// is used and logged loudly.
func SeedAdminUser(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	plaintext := cfg.Admin.Password
	if plaintext == "" {
		if cfg.IsProd() {
			return fmt.Errorf("ADMIN_PASSWORD is required to seed the admin account in prod")
		}
		plaintext = "nexum-dev-admin"
		log.Println("⚠️ ADMIN_PASSWORD not set, seeding admin with the dev default password")
	}

	hashed, err := password.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     domain.RoleAdmin,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("✅ Seeded admin account: %s", admin.Email)
	return nil
}
