package models

import (
	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultStaff creates a staff account on first boot so the order
// dashboard is reachable before anyone registers.
func InitDefaultStaff(email, password string) error {
	var count int64
	DB.Model(&User{}).Where("role = ?", constants.UserRoleStaff).Count(&count)
	if count > 0 {
		return nil
	}

	if email == "" {
		email = "staff@bakehouse.local"
	}
	if password == "" {
		password = "staff123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff := User{
		Name:         "Staff",
		Email:        email,
		PasswordHash: string(hash),
		AuthType:     constants.AuthTypeLocal,
		Role:         constants.UserRoleStaff,
	}

	if err := DB.Create(&staff).Error; err != nil {
		return err
	}

	if password == "staff123" {
		logger.Warnw("default_staff_created_with_default_password", "email", email)
		logger.Warnw("default_staff_password_change_required", "email", email)
	} else {
		logger.Warnw("default_staff_created", "email", email, "password_hidden", true)
	}

	return nil
}
