package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a placed bakery order. OrderID is the short sequential
// customer-facing number; ID stays the internal key.
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	OrderID        string         `gorm:"uniqueIndex;not null" json:"order_id"`
	UserID         uint           `gorm:"index;not null" json:"user_id"`
	UserName       string         `json:"user_name"`
	UserEmail      string         `gorm:"index" json:"user_email"`
	TotalAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	Quantity       int            `gorm:"not null;default:0" json:"quantity"`
	PickupDateTime time.Time      `gorm:"index" json:"pickup_date_time"`
	Status         string         `gorm:"index;not null;default:'Pending'" json:"status"`
	CancelReason   string         `json:"cancel_reason,omitempty"`
	PaymentMethod  string         `gorm:"type:varchar(20)" json:"payment_method"`
	PaymentStatus  string         `gorm:"index;not null;default:'Pending'" json:"payment_status"`
	PaymentLink    string         `json:"payment_link,omitempty"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Lines []OrderLine `gorm:"foreignKey:OrderRef" json:"lines,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
