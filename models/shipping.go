package models

import "time"

type Shipping struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OrderID         uint      `gorm:"not null;index" json:"order_id"`
	ReceiverName    string    `gorm:"type:varchar(255);not null" json:"receiver_name"`
	ShippingAddress string    `gorm:"type:text;not null" json:"shipping_address"`
	Phone           string    `gorm:"type:varchar(20);not null" json:"phone"`
	ShippingStatus  string    `gorm:"type:varchar(20);not null;default:'pending'" json:"shipping_status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
