package models

import "time"

// MenuWithRestaurant is the joined listing row: a menu together with the
// name of the restaurant that serves it.
type MenuWithRestaurant struct {
	ID             uint      `json:"id"`
	RestaurantID   uint      `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	MenuName       string    `json:"menu_name"`
	Description    *string   `json:"description"`
	Price          float64   `json:"price"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Menu struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	MenuName     string    `gorm:"type:varchar(255);not null" json:"menu_name"`
	Description  *string   `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category     string    `gorm:"type:varchar(100);not null" json:"category"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
