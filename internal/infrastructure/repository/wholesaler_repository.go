package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	domainRepo "github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/pagination"
	"gorm.io/gorm"
)

type wholesalerRepository struct {
	db *gorm.DB
}

// NewWholesalerRepository creates a new wholesaler repository
func NewWholesalerRepository(db *gorm.DB) domainRepo.WholesalerRepository {
	return &wholesalerRepository{db: db}
}

func (r *wholesalerRepository) Create(ctx context.Context, wholesaler *entity.Wholesaler) error {
	return r.db.WithContext(ctx).Create(wholesaler).Error
}

func (r *wholesalerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Wholesaler, error) {
	var wholesaler entity.Wholesaler
	err := r.db.WithContext(ctx).First(&wholesaler, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &wholesaler, err
}

func (r *wholesalerRepository) Update(ctx context.Context, wholesaler *entity.Wholesaler) error {
	return r.db.WithContext(ctx).Save(wholesaler).Error
}

func (r *wholesalerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Wholesaler{}, "id = ?", id).Error
}

func (r *wholesalerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Wholesaler, int64, error) {
	var wholesalers []entity.Wholesaler
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Wholesaler{})

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR contact_person ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&wholesalers).Error

	return wholesalers, total, err
}
