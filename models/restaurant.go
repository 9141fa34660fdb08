package models

import "time"

type Restaurant struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RestaurantName  string    `gorm:"type:varchar(255);not null" json:"restaurant_name"`
	Address         *string   `gorm:"type:text" json:"address"`
	Phone           *string   `gorm:"type:varchar(20)" json:"phone"`
	MenuDescription *string   `gorm:"type:text" json:"menu_description"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
