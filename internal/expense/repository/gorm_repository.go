package repository

import (
	"errors"
	"time"

	"expense-tracker-backend/internal/expense/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormExpenseRepository implements ExpenseRepository using GORM
type gormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GORM-based ExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &gormExpenseRepository{db: db}
}

func (r *gormExpenseRepository) Create(expense *domain.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()
	return r.db.Create(expense).Error
}

func (r *gormExpenseRepository) FindByID(id string) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.Where("id = ?", id).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *gormExpenseRepository) FindByUserID(userID string) ([]*domain.Expense, error) {
	var expenses []*domain.Expense
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *gormExpenseRepository) FindByUserSince(userID string, since time.Time) ([]*domain.Expense, error) {
	var expenses []*domain.Expense
	err := r.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *gormExpenseRepository) FindRecent(userID string, limit int) ([]*domain.Expense, error) {
	var expenses []*domain.Expense
	err := r.db.Where("user_id = ?", userID).Order("date DESC").
		Limit(limit).Find(&expenses).Error
	return expenses, err
}

func (r *gormExpenseRepository) SumByUser(userID string) (float64, error) {
	var total float64
	err := r.db.Model(&domain.Expense{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (r *gormExpenseRepository) Delete(id string) error {
	return r.db.Delete(&domain.Expense{}, "id = ?", id).Error
}
