package usecase

import (
	"errors"

	"expense-tracker-backend/internal/income/domain"
)

var (
	ErrMissingFields = errors.New("income fields are required")
	ErrNotFound      = errors.New("income not found")
	ErrNotOwner      = errors.New("income does not belong to user")
)

// IncomeUsecase defines the interface for income business logic
type IncomeUsecase interface {
	// AddIncome creates a new income entry for the user
	AddIncome(userID, icon, source string, amount float64, date string) (*domain.Income, error)

	// GetUserIncomes returns all income entries for the user, newest first
	GetUserIncomes(userID string) ([]*domain.Income, error)

	// DeleteIncome deletes an income entry (with ownership check)
	DeleteIncome(userID, incomeID string) error
}
