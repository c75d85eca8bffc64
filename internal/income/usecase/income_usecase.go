package usecase

import (
	"time"

	"expense-tracker-backend/internal/income/domain"
	"expense-tracker-backend/internal/income/repository"
)

// incomeUsecase implements IncomeUsecase interface
type incomeUsecase struct {
	incomeRepo repository.IncomeRepository
}

// NewIncomeUsecase creates a new instance of incomeUsecase
func NewIncomeUsecase(incomeRepo repository.IncomeRepository) IncomeUsecase {
	return &incomeUsecase{
		incomeRepo: incomeRepo,
	}
}

func (u *incomeUsecase) AddIncome(userID, icon, source string, amount float64, date string) (*domain.Income, error) {
	if source == "" || amount <= 0 || date == "" {
		return nil, ErrMissingFields
	}

	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		if parsedDate, err = time.Parse(time.RFC3339, date); err != nil {
			return nil, ErrMissingFields
		}
	}

	income := &domain.Income{
		UserID: userID,
		Icon:   icon,
		Source: source,
		Amount: amount,
		Date:   parsedDate,
	}

	if err := u.incomeRepo.Create(income); err != nil {
		return nil, err
	}

	return income, nil
}

func (u *incomeUsecase) GetUserIncomes(userID string) ([]*domain.Income, error) {
	return u.incomeRepo.FindByUserID(userID)
}

func (u *incomeUsecase) DeleteIncome(userID, incomeID string) error {
	income, err := u.incomeRepo.FindByID(incomeID)
	if err != nil {
		return err
	}
	if income == nil {
		return ErrNotFound
	}
	if income.UserID != userID {
		return ErrNotOwner
	}
	return u.incomeRepo.Delete(incomeID)
}
