package models

import (
	"time"

	"gorm.io/gorm"
)

// CartLine is one line in a customer's cart. Regular lines snapshot a
// catalog item; custom lines describe a made-to-order cake and are
// never merged.
type CartLine struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	UserID        uint           `gorm:"index;not null" json:"user_id"`
	ItemType      string         `gorm:"type:varchar(20);not null;default:'regular'" json:"item_type"`
	Title         string         `gorm:"index" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	CustomRequest string         `gorm:"type:text" json:"custom_request,omitempty"`
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Quantity      int            `gorm:"not null;default:1" json:"quantity"`
	Category      string         `json:"category,omitempty"`
	Flavor        string         `json:"flavor,omitempty"`
	Frosting      string         `json:"frosting,omitempty"`
	Fillings      string         `json:"fillings,omitempty"`
	Image         string         `json:"image,omitempty"`
	ImagePath     string         `json:"image_path,omitempty"`
	PickupTime    *time.Time     `json:"pickup_time,omitempty"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (CartLine) TableName() string {
	return "cart_lines"
}
