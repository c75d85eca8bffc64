package domain

import "time"

type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	FullName        string    `json:"fullName" gorm:"not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	Password        string    `json:"-" gorm:"not null"` // Never return password in JSON
	ProfileImageURL string    `json:"profileImageURL,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
