package entities

import "time"

type Profile struct {
	UserID      string    `gorm:"primaryKey" json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
