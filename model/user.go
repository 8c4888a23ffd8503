package model

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Role      string    `json:"role"` // user / admin
	CreatedAt time.Time `json:"created_at"`
}
