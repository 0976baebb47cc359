package models

import "time"

// LoyaltyRecord tracks a customer's paid-order count for the loyalty
// program. One row per user, rewritten by the recount task.
type LoyaltyRecord struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	UserID               uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	UserName             string    `json:"user_name"`
	OrderCount           int       `gorm:"not null;default:0" json:"order_count"`
	SpecialOfferEligible bool      `gorm:"not null;default:false" json:"special_offer_eligible"`
	Status               string    `gorm:"type:varchar(20);not null;default:'not active'" json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (LoyaltyRecord) TableName() string {
	return "loyalty_records"
}
