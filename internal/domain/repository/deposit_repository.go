package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// DepositRepository defines the interface for daily-deposit data
// operations. Deposits are append-only; there is no update or delete.
type DepositRepository interface {
	Create(ctx context.Context, deposit *entity.DailyDeposit) error
	List(ctx context.Context, params *DepositFilterParams) ([]entity.DailyDeposit, int64, error)
	// ListRange returns all deposits whose date falls in [from, to),
	// optionally scoped to one employee. Nil bounds are open-ended.
	ListRange(ctx context.Context, from, to *time.Time, employeeID *uuid.UUID) ([]entity.DailyDeposit, error)
}

// DepositFilterParams contains filtering parameters for deposit queries
type DepositFilterParams struct {
	Pagination *pagination.PaginationParams
	EmployeeID *uuid.UUID
	Date       *time.Time
}
