package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a customer or staff account. Local accounts carry a password
// hash; Google accounts carry a GoogleID instead.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"default:''" json:"name"`
	GoogleName   string         `gorm:"default:''" json:"google_name,omitempty"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `json:"-"`
	GoogleID     string         `gorm:"index" json:"-"`
	AuthType     string         `gorm:"type:varchar(20);not null;default:'local'" json:"auth_type"`
	Image        string         `gorm:"default:'default-profile.png'" json:"image"`
	Role         string         `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	LastLoginAt  *time.Time     `json:"last_login_at"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
