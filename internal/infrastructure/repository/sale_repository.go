package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	domainRepo "github.com/medipos/pharmapos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) CreateBatch(ctx context.Context, sales []entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&sales).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where(
			"product_name ILIKE ? OR employee_name ILIKE ? OR customer_name ILIKE ? OR prescription_number ILIKE ?",
			like, like, like, like)
	}

	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}

	if params.EmployeeID != nil {
		query = query.Where("employee_id = ?", *params.EmployeeID)
	}

	if params.From != nil {
		query = query.Where("timestamp >= ?", *params.From)
	}

	if params.To != nil {
		query = query.Where("timestamp < ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("timestamp DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListRange(ctx context.Context, params *domainRepo.SaleRangeParams) ([]entity.Sale, error) {
	var sales []entity.Sale

	query := r.db.WithContext(ctx).Model(&entity.Sale{})
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where(
			"product_name ILIKE ? OR employee_name ILIKE ? OR customer_name ILIKE ? OR prescription_number ILIKE ?",
			like, like, like, like)
	}
	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}
	if params.EmployeeID != nil {
		query = query.Where("employee_id = ?", *params.EmployeeID)
	}
	if params.From != nil {
		query = query.Where("timestamp >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("timestamp < ?", *params.To)
	}

	err := query.Order("timestamp DESC").Find(&sales).Error
	return sales, err
}
