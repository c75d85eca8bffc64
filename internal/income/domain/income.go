package domain

import "time"

// Income represents a single income entry belonging to a user
type Income struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Icon      string    `json:"icon,omitempty"`
	Source    string    `json:"source" gorm:"not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
