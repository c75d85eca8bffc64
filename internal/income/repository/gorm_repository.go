package repository

import (
	"errors"
	"time"

	"expense-tracker-backend/internal/income/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormIncomeRepository implements IncomeRepository using GORM
type gormIncomeRepository struct {
	db *gorm.DB
}

// NewGormIncomeRepository creates a new GORM-based IncomeRepository
func NewGormIncomeRepository(db *gorm.DB) IncomeRepository {
	return &gormIncomeRepository{db: db}
}

func (r *gormIncomeRepository) Create(income *domain.Income) error {
	if income.ID == "" {
		income.ID = uuid.New().String()
	}
	income.CreatedAt = time.Now()
	income.UpdatedAt = time.Now()
	return r.db.Create(income).Error
}

func (r *gormIncomeRepository) FindByID(id string) (*domain.Income, error) {
	var income domain.Income
	err := r.db.Where("id = ?", id).First(&income).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &income, nil
}

func (r *gormIncomeRepository) FindByUserID(userID string) ([]*domain.Income, error) {
	var incomes []*domain.Income
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&incomes).Error
	return incomes, err
}

func (r *gormIncomeRepository) FindByUserSince(userID string, since time.Time) ([]*domain.Income, error) {
	var incomes []*domain.Income
	err := r.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").Find(&incomes).Error
	return incomes, err
}

func (r *gormIncomeRepository) FindRecent(userID string, limit int) ([]*domain.Income, error) {
	var incomes []*domain.Income
	err := r.db.Where("user_id = ?", userID).Order("date DESC").
		Limit(limit).Find(&incomes).Error
	return incomes, err
}

func (r *gormIncomeRepository) SumByUser(userID string) (float64, error) {
	var total float64
	err := r.db.Model(&domain.Income{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (r *gormIncomeRepository) Delete(id string) error {
	return r.db.Delete(&domain.Income{}, "id = ?", id).Error
}
