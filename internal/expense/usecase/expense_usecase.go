package usecase

import (
	"time"

	"expense-tracker-backend/internal/expense/domain"
	"expense-tracker-backend/internal/expense/repository"
)

// expenseUsecase implements ExpenseUsecase interface
type expenseUsecase struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseUsecase creates a new instance of expenseUsecase
func NewExpenseUsecase(expenseRepo repository.ExpenseRepository) ExpenseUsecase {
	return &expenseUsecase{
		expenseRepo: expenseRepo,
	}
}

func (u *expenseUsecase) AddExpense(userID, icon, category string, amount float64, date string) (*domain.Expense, error) {
	if category == "" || amount <= 0 || date == "" {
		return nil, ErrMissingFields
	}

	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		if parsedDate, err = time.Parse(time.RFC3339, date); err != nil {
			return nil, ErrMissingFields
		}
	}

	expense := &domain.Expense{
		UserID:   userID,
		Icon:     icon,
		Category: category,
		Amount:   amount,
		Date:     parsedDate,
	}

	if err := u.expenseRepo.Create(expense); err != nil {
		return nil, err
	}

	return expense, nil
}

func (u *expenseUsecase) GetUserExpenses(userID string) ([]*domain.Expense, error) {
	return u.expenseRepo.FindByUserID(userID)
}

func (u *expenseUsecase) DeleteExpense(userID, expenseID string) error {
	expense, err := u.expenseRepo.FindByID(expenseID)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrNotFound
	}
	if expense.UserID != userID {
		return ErrNotOwner
	}
	return u.expenseRepo.Delete(expenseID)
}
