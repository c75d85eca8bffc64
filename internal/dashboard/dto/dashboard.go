package dto

import (
	expensedomain "expense-tracker-backend/internal/expense/domain"
	incomedomain "expense-tracker-backend/internal/income/domain"
)

// Transaction is a unified view of an income or expense entry, used for
// the merged recent-transactions list.
type Transaction struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"` // "income" or "expense"
	Icon     string  `json:"icon,omitempty"`
	Source   string  `json:"source,omitempty"`
	Category string  `json:"category,omitempty"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type WindowSummary struct {
	Total        float64       `json:"total"`
	Transactions []Transaction `json:"transactions"`
}

type DashboardResponse struct {
	TotalBalance       float64       `json:"totalBalance"`
	TotalIncome        float64       `json:"totalIncome"`
	TotalExpense       float64       `json:"totalExpense"`
	Last60DaysIncome   WindowSummary `json:"last60DaysIncome"`
	Last30DaysExpenses WindowSummary `json:"last30DaysExpenses"`
	RecentTransactions []Transaction `json:"recentTransactions"`
}

func FromIncome(income *incomedomain.Income) Transaction {
	return Transaction{
		ID:     income.ID,
		Type:   "income",
		Icon:   income.Icon,
		Source: income.Source,
		Amount: income.Amount,
		Date:   income.Date.Format("2006-01-02"),
	}
}

func FromExpense(expense *expensedomain.Expense) Transaction {
	return Transaction{
		ID:       expense.ID,
		Type:     "expense",
		Icon:     expense.Icon,
		Category: expense.Category,
		Amount:   expense.Amount,
		Date:     expense.Date.Format("2006-01-02"),
	}
}
