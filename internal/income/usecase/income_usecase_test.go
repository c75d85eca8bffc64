package usecase

import (
	"strconv"
	"testing"
	"time"

	"expense-tracker-backend/internal/income/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIncomeRepo struct {
	entries map[string]*domain.Income
	nextID  int
}

func newFakeIncomeRepo() *fakeIncomeRepo {
	return &fakeIncomeRepo{entries: make(map[string]*domain.Income)}
}

func (r *fakeIncomeRepo) Create(income *domain.Income) error {
	r.nextID++
	income.ID = "inc-" + strconv.Itoa(r.nextID)
	r.entries[income.ID] = income
	return nil
}

func (r *fakeIncomeRepo) FindByID(id string) (*domain.Income, error) {
	return r.entries[id], nil
}

func (r *fakeIncomeRepo) FindByUserID(userID string) ([]*domain.Income, error) {
	var out []*domain.Income
	for _, income := range r.entries {
		if income.UserID == userID {
			out = append(out, income)
		}
	}
	return out, nil
}

func (r *fakeIncomeRepo) FindByUserSince(userID string, _ time.Time) ([]*domain.Income, error) {
	return r.FindByUserID(userID)
}

func (r *fakeIncomeRepo) FindRecent(userID string, _ int) ([]*domain.Income, error) {
	return r.FindByUserID(userID)
}

func (r *fakeIncomeRepo) SumByUser(string) (float64, error) { return 0, nil }

func (r *fakeIncomeRepo) Delete(id string) error {
	delete(r.entries, id)
	return nil
}

func TestAddIncome(t *testing.T) {
	t.Parallel()

	uc := NewIncomeUsecase(newFakeIncomeRepo())

	income, err := uc.AddIncome("u1", "💰", "Salary", 3000, "2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, "u1", income.UserID)
	assert.Equal(t, "Salary", income.Source)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), income.Date)
}

func TestAddIncome_Validation(t *testing.T) {
	t.Parallel()

	uc := NewIncomeUsecase(newFakeIncomeRepo())

	_, err := uc.AddIncome("u1", "", "", 3000, "2026-08-01")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = uc.AddIncome("u1", "", "Salary", 0, "2026-08-01")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = uc.AddIncome("u1", "", "Salary", 3000, "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = uc.AddIncome("u1", "", "Salary", 3000, "not-a-date")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestDeleteIncome_Ownership(t *testing.T) {
	t.Parallel()

	repo := newFakeIncomeRepo()
	uc := NewIncomeUsecase(repo)

	income, err := uc.AddIncome("u1", "", "Salary", 3000, "2026-08-01")
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteIncome("u2", income.ID), ErrNotOwner)
	assert.ErrorIs(t, uc.DeleteIncome("u1", "missing"), ErrNotFound)
	assert.NoError(t, uc.DeleteIncome("u1", income.ID))
	assert.ErrorIs(t, uc.DeleteIncome("u1", income.ID), ErrNotFound)
}
