package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Archive soft-deletes a product by flipping its status; the row is
	// never removed so historical sales keep a valid reference.
	Archive(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)
	GetExpiringBefore(ctx context.Context, cutoff time.Time) ([]entity.Product, error)
	// DecrementStockBatch atomically decrements stock for multiple products
	// in one transaction. If any product has insufficient stock the whole
	// transaction rolls back and the failing IDs are returned.
	DecrementStockBatch(ctx context.Context, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
	// IncrementStockBatch restores stock (compensation path)
	IncrementStockBatch(ctx context.Context, increments map[uuid.UUID]int) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination      *pagination.PaginationParams
	Search          string
	Category        string
	LowStock        bool
	IncludeArchived bool
	SortBy          string
	SortOrder       string
}
