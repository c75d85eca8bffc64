package repository

import (
	"time"

	"expense-tracker-backend/internal/expense/domain"
)

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	// Create creates a new expense entry
	Create(expense *domain.Expense) error

	// FindByID finds an expense entry by its ID
	FindByID(id string) (*domain.Expense, error)

	// FindByUserID returns all expense entries for a user, newest first
	FindByUserID(userID string) ([]*domain.Expense, error)

	// FindByUserSince returns expense entries dated on or after since, newest first
	FindByUserSince(userID string, since time.Time) ([]*domain.Expense, error)

	// FindRecent returns the most recent entries for a user, capped at limit
	FindRecent(userID string, limit int) ([]*domain.Expense, error)

	// SumByUser returns the total expense amount for a user
	SumByUser(userID string) (float64, error)

	// Delete deletes an expense entry by ID
	Delete(id string) error
}
