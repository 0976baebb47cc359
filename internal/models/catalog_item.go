package models

import (
	"time"

	"gorm.io/gorm"
)

// CatalogItem is a bakery product shown on the storefront.
type CatalogItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"not null;index" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Category    string         `gorm:"index" json:"category"`
	Image       string         `json:"image"`
	Available   bool           `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (CatalogItem) TableName() string {
	return "catalog_items"
}
