package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderLine is a snapshot of one cart line at checkout time.
type OrderLine struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	OrderRef      uint           `gorm:"index;not null" json:"order_ref"`
	ItemType      string         `gorm:"type:varchar(20);not null;default:'regular'" json:"item_type"`
	Title         string         `json:"title"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	CustomRequest string         `gorm:"type:text" json:"custom_request,omitempty"`
	UnitPrice     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Quantity      int            `gorm:"not null" json:"quantity"`
	Flavor        string         `json:"flavor,omitempty"`
	Frosting      string         `json:"frosting,omitempty"`
	Fillings      string         `json:"fillings,omitempty"`
	Image         string         `json:"image,omitempty"`
	ImagePath     string         `json:"image_path,omitempty"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderLine) TableName() string {
	return "order_lines"
}
