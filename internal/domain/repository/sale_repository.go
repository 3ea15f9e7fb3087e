package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations.
// Sales are immutable; there are no update or delete operations.
type SaleRepository interface {
	// CreateBatch writes all sale lines of a checkout in one transaction
	CreateBatch(ctx context.Context, sales []entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListRange returns all matching sales without pagination, newest
	// first. Nil or empty params fields are open-ended.
	ListRange(ctx context.Context, params *SaleRangeParams) ([]entity.Sale, error)
}

// SaleRangeParams filters the unpaginated range queries behind
// settlement and exports. Exports apply the same search and
// payment-method facets as the paginated sales list.
type SaleRangeParams struct {
	From          *time.Time
	To            *time.Time
	EmployeeID    *uuid.UUID
	Search        string
	PaymentMethod *enum.PaymentMethod
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentMethod *enum.PaymentMethod
	EmployeeID    *uuid.UUID
	From          *time.Time
	To            *time.Time
}
