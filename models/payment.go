package models

import "time"

// Valid payment_method / payment_status values on the wire.
var (
	PaymentMethods  = []string{"cash", "CQ_code", "prompay"}
	PaymentStatuses = []string{"paid", "unpaid"}
)

type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrderID       uint       `gorm:"not null;index" json:"order_id"`
	PaymentMethod string     `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentStatus string     `gorm:"type:varchar(20);not null;default:'unpaid'" json:"payment_status"`
	Amount        float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaidAt        *time.Time `json:"paid_at"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}
