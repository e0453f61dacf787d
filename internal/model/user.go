package model

import "time"

// User represents a shop customer. The cart lives on the user row as a
// JSON document, one quantity per catalog slot.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:255"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CartData     CartData  `json:"cartData" gorm:"type:json"`
	CreatedAt    time.Time `json:"date"`
}
