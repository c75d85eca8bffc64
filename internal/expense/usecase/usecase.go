package usecase

import (
	"errors"

	"expense-tracker-backend/internal/expense/domain"
)

var (
	ErrMissingFields = errors.New("expense fields are required")
	ErrNotFound      = errors.New("expense not found")
	ErrNotOwner      = errors.New("expense does not belong to user")
)

// ExpenseUsecase defines the interface for expense business logic
type ExpenseUsecase interface {
	// AddExpense creates a new expense entry for the user
	AddExpense(userID, icon, category string, amount float64, date string) (*domain.Expense, error)

	// GetUserExpenses returns all expense entries for the user, newest first
	GetUserExpenses(userID string) ([]*domain.Expense, error)

	// DeleteExpense deletes an expense entry (with ownership check)
	DeleteExpense(userID, expenseID string) error
}
