package usecase

import (
	"sort"
	"time"

	"expense-tracker-backend/internal/dashboard/dto"
	expenserepo "expense-tracker-backend/internal/expense/repository"
	incomerepo "expense-tracker-backend/internal/income/repository"
)

const recentLimit = 5

// DashboardUsecase defines the interface for dashboard aggregation
type DashboardUsecase interface {
	// GetDashboardData returns totals, the 60-day income and 30-day expense
	// windows, and the merged recent transactions for a user.
	GetDashboardData(userID string) (*dto.DashboardResponse, error)
}

// dashboardUsecase composes the income and expense repositories
type dashboardUsecase struct {
	incomeRepo  incomerepo.IncomeRepository
	expenseRepo expenserepo.ExpenseRepository
}

// NewDashboardUsecase creates a new instance of dashboardUsecase
func NewDashboardUsecase(incomeRepo incomerepo.IncomeRepository, expenseRepo expenserepo.ExpenseRepository) DashboardUsecase {
	return &dashboardUsecase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

func (u *dashboardUsecase) GetDashboardData(userID string) (*dto.DashboardResponse, error) {
	totalIncome, err := u.incomeRepo.SumByUser(userID)
	if err != nil {
		return nil, err
	}
	totalExpense, err := u.expenseRepo.SumByUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	incomes60, err := u.incomeRepo.FindByUserSince(userID, now.AddDate(0, 0, -60))
	if err != nil {
		return nil, err
	}
	incomeWindow := dto.WindowSummary{Transactions: []dto.Transaction{}}
	for _, income := range incomes60 {
		incomeWindow.Total += income.Amount
		incomeWindow.Transactions = append(incomeWindow.Transactions, dto.FromIncome(income))
	}

	expenses30, err := u.expenseRepo.FindByUserSince(userID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	expenseWindow := dto.WindowSummary{Transactions: []dto.Transaction{}}
	for _, expense := range expenses30 {
		expenseWindow.Total += expense.Amount
		expenseWindow.Transactions = append(expenseWindow.Transactions, dto.FromExpense(expense))
	}

	recent, err := u.recentTransactions(userID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalBalance:       totalIncome - totalExpense,
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		Last60DaysIncome:   incomeWindow,
		Last30DaysExpenses: expenseWindow,
		RecentTransactions: recent,
	}, nil
}

// recentTransactions merges the newest entries of both kinds, sorted by
// date desc and capped at recentLimit.
func (u *dashboardUsecase) recentTransactions(userID string) ([]dto.Transaction, error) {
	incomes, err := u.incomeRepo.FindRecent(userID, recentLimit)
	if err != nil {
		return nil, err
	}
	expenses, err := u.expenseRepo.FindRecent(userID, recentLimit)
	if err != nil {
		return nil, err
	}

	merged := make([]dto.Transaction, 0, len(incomes)+len(expenses))
	for _, income := range incomes {
		merged = append(merged, dto.FromIncome(income))
	}
	for _, expense := range expenses {
		merged = append(merged, dto.FromExpense(expense))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})

	if len(merged) > recentLimit {
		merged = merged[:recentLimit]
	}
	return merged, nil
}
