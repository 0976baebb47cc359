package models

import "time"

// CustomizationPrice is the surcharge for one custom cake option,
// keyed by option type (layer / shape) and option value.
type CustomizationPrice struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Type      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_customization_type_key" json:"type"`
	Key       string    `gorm:"not null;uniqueIndex:idx_customization_type_key" json:"key"`
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (CustomizationPrice) TableName() string {
	return "customization_prices"
}
