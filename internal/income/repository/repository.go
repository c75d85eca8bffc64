package repository

import (
	"time"

	"expense-tracker-backend/internal/income/domain"
)

// IncomeRepository defines the interface for income data access
type IncomeRepository interface {
	// Create creates a new income entry
	Create(income *domain.Income) error

	// FindByID finds an income entry by its ID
	FindByID(id string) (*domain.Income, error)

	// FindByUserID returns all income entries for a user, newest first
	FindByUserID(userID string) ([]*domain.Income, error)

	// FindByUserSince returns income entries dated on or after since, newest first
	FindByUserSince(userID string, since time.Time) ([]*domain.Income, error)

	// FindRecent returns the most recent entries for a user, capped at limit
	FindRecent(userID string, limit int) ([]*domain.Income, error)

	// SumByUser returns the total income amount for a user
	SumByUser(userID string) (float64, error)

	// Delete deletes an income entry by ID
	Delete(id string) error
}
