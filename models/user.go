package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(255);unique;not null" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Firstname *string   `gorm:"type:varchar(255)" json:"firstname"`
	Fullname  *string   `gorm:"type:varchar(255)" json:"fullname"`
	Lastname  *string   `gorm:"type:varchar(255)" json:"lastname"`
	Address   *string   `gorm:"type:text" json:"address"`
	Phone     *string   `gorm:"type:varchar(20)" json:"phone"`
	Email     *string   `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
