package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// WholesalerRepository defines the interface for wholesaler data operations
type WholesalerRepository interface {
	Create(ctx context.Context, wholesaler *entity.Wholesaler) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Wholesaler, error)
	Update(ctx context.Context, wholesaler *entity.Wholesaler) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Wholesaler, int64, error)
}
