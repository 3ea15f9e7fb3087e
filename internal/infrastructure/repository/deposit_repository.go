package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	domainRepo "github.com/medipos/pharmapos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type depositRepository struct {
	db *gorm.DB
}

// NewDepositRepository creates a new deposit repository
func NewDepositRepository(db *gorm.DB) domainRepo.DepositRepository {
	return &depositRepository{db: db}
}

func (r *depositRepository) Create(ctx context.Context, deposit *entity.DailyDeposit) error {
	return r.db.WithContext(ctx).Create(deposit).Error
}

func (r *depositRepository) List(ctx context.Context, params *domainRepo.DepositFilterParams) ([]entity.DailyDeposit, int64, error) {
	var deposits []entity.DailyDeposit
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DailyDeposit{})

	if params.EmployeeID != nil {
		query = query.Where("employee_id = ?", *params.EmployeeID)
	}

	if params.Date != nil {
		query = query.Where("date = ?", params.Date.Format(entity.DateLayout))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, created_at DESC").
		Find(&deposits).Error

	return deposits, total, err
}

func (r *depositRepository) ListRange(ctx context.Context, from, to *time.Time, employeeID *uuid.UUID) ([]entity.DailyDeposit, error) {
	var deposits []entity.DailyDeposit

	query := r.db.WithContext(ctx).Model(&entity.DailyDeposit{})
	if from != nil {
		query = query.Where("date >= ?", from.Format(entity.DateLayout))
	}
	if to != nil {
		query = query.Where("date < ?", to.Format(entity.DateLayout))
	}
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}

	err := query.Order("date DESC, created_at DESC").Find(&deposits).Error
	return deposits, err
}
