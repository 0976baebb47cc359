package models

import "time"

// Counter is a named monotonic sequence. The orderId counter backs the
// customer-facing order numbers.
type Counter struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Value     int64     `gorm:"not null;default:0" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Counter) TableName() string {
	return "counters"
}
