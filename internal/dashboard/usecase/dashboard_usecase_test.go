package usecase

import (
	"testing"
	"time"

	expensedomain "expense-tracker-backend/internal/expense/domain"
	incomedomain "expense-tracker-backend/internal/income/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIncomeRepo struct {
	incomes []*incomedomain.Income
}

func (r *fakeIncomeRepo) Create(*incomedomain.Income) error                   { return nil }
func (r *fakeIncomeRepo) FindByID(string) (*incomedomain.Income, error)       { return nil, nil }
func (r *fakeIncomeRepo) Delete(string) error                                 { return nil }
func (r *fakeIncomeRepo) FindByUserID(string) ([]*incomedomain.Income, error) { return r.incomes, nil }

func (r *fakeIncomeRepo) FindByUserSince(_ string, since time.Time) ([]*incomedomain.Income, error) {
	var out []*incomedomain.Income
	for _, income := range r.incomes {
		if !income.Date.Before(since) {
			out = append(out, income)
		}
	}
	return out, nil
}

func (r *fakeIncomeRepo) FindRecent(_ string, limit int) ([]*incomedomain.Income, error) {
	if len(r.incomes) > limit {
		return r.incomes[:limit], nil
	}
	return r.incomes, nil
}

func (r *fakeIncomeRepo) SumByUser(string) (float64, error) {
	var total float64
	for _, income := range r.incomes {
		total += income.Amount
	}
	return total, nil
}

type fakeExpenseRepo struct {
	expenses []*expensedomain.Expense
}

func (r *fakeExpenseRepo) Create(*expensedomain.Expense) error             { return nil }
func (r *fakeExpenseRepo) FindByID(string) (*expensedomain.Expense, error) { return nil, nil }
func (r *fakeExpenseRepo) Delete(string) error                             { return nil }

func (r *fakeExpenseRepo) FindByUserID(string) ([]*expensedomain.Expense, error) {
	return r.expenses, nil
}

func (r *fakeExpenseRepo) FindByUserSince(_ string, since time.Time) ([]*expensedomain.Expense, error) {
	var out []*expensedomain.Expense
	for _, expense := range r.expenses {
		if !expense.Date.Before(since) {
			out = append(out, expense)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) FindRecent(_ string, limit int) ([]*expensedomain.Expense, error) {
	if len(r.expenses) > limit {
		return r.expenses[:limit], nil
	}
	return r.expenses, nil
}

func (r *fakeExpenseRepo) SumByUser(string) (float64, error) {
	var total float64
	for _, expense := range r.expenses {
		total += expense.Amount
	}
	return total, nil
}

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func TestGetDashboardData(t *testing.T) {
	t.Parallel()

	incomes := &fakeIncomeRepo{incomes: []*incomedomain.Income{
		{ID: "i1", Source: "Salary", Amount: 3000, Date: daysAgo(1)},
		{ID: "i2", Source: "Freelance", Amount: 500, Date: daysAgo(45)},
		{ID: "i3", Source: "Dividends", Amount: 200, Date: daysAgo(90)},
	}}
	expenses := &fakeExpenseRepo{expenses: []*expensedomain.Expense{
		{ID: "e1", Category: "Rent", Amount: 1200, Date: daysAgo(2)},
		{ID: "e2", Category: "Groceries", Amount: 150, Date: daysAgo(40)},
	}}

	uc := NewDashboardUsecase(incomes, expenses)
	data, err := uc.GetDashboardData("u1")
	require.NoError(t, err)

	assert.Equal(t, 3700.0, data.TotalIncome)
	assert.Equal(t, 1350.0, data.TotalExpense)
	assert.Equal(t, 2350.0, data.TotalBalance)

	// 60-day income window excludes the 90-day-old entry.
	assert.Equal(t, 3500.0, data.Last60DaysIncome.Total)
	assert.Len(t, data.Last60DaysIncome.Transactions, 2)

	// 30-day expense window excludes the 40-day-old entry.
	assert.Equal(t, 1200.0, data.Last30DaysExpenses.Total)
	assert.Len(t, data.Last30DaysExpenses.Transactions, 1)

	require.Len(t, data.RecentTransactions, 5)
	// Newest first across both kinds.
	assert.Equal(t, "i1", data.RecentTransactions[0].ID)
	assert.Equal(t, "e1", data.RecentTransactions[1].ID)
}

func TestGetDashboardData_RecentCappedAtFive(t *testing.T) {
	t.Parallel()

	var incomeEntries []*incomedomain.Income
	for i := 0; i < 5; i++ {
		incomeEntries = append(incomeEntries, &incomedomain.Income{
			ID: "i", Source: "s", Amount: 1, Date: daysAgo(i),
		})
	}
	var expenseEntries []*expensedomain.Expense
	for i := 0; i < 5; i++ {
		expenseEntries = append(expenseEntries, &expensedomain.Expense{
			ID: "e", Category: "c", Amount: 1, Date: daysAgo(i),
		})
	}

	uc := NewDashboardUsecase(&fakeIncomeRepo{incomes: incomeEntries}, &fakeExpenseRepo{expenses: expenseEntries})
	data, err := uc.GetDashboardData("u1")
	require.NoError(t, err)
	assert.Len(t, data.RecentTransactions, 5)
}

func TestGetDashboardData_Empty(t *testing.T) {
	t.Parallel()

	uc := NewDashboardUsecase(&fakeIncomeRepo{}, &fakeExpenseRepo{})
	data, err := uc.GetDashboardData("u1")
	require.NoError(t, err)

	assert.Zero(t, data.TotalBalance)
	assert.Empty(t, data.RecentTransactions)
	assert.Empty(t, data.Last30DaysExpenses.Transactions)
}
