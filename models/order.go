package models

import "time"

type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerID   uint      `gorm:"not null;index" json:"customer_id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	MenuID       uint      `gorm:"not null;index" json:"menu_id"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	TotalPrice   float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// OrderSummary is the joined reporting row for GET /api/orders/summary.
type OrderSummary struct {
	ID             uint      `json:"id"`
	MenuName       string    `json:"menu_name"`
	RestaurantName string    `json:"restaurant_name"`
	Quantity       int       `json:"quantity"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
