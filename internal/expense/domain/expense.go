package domain

import "time"

// Expense represents a single expense entry belonging to a user
type Expense struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Icon      string    `json:"icon,omitempty"`
	Category  string    `json:"category" gorm:"not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
