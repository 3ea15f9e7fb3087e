package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/apperror"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// minDepositNoteLen keeps deposit notes from being empty or
// single-character filler; reconciliation reviews lean on them.
const minDepositNoteLen = 5

// DepositService handles daily cash deposit submissions
type DepositService struct {
	depositRepo repository.DepositRepository
}

// NewDepositService creates a new deposit service
func NewDepositService(depositRepo repository.DepositRepository) *DepositService {
	return &DepositService{depositRepo: depositRepo}
}

// CreateDepositInput represents one cash submission. Amounts are cents.
type CreateDepositInput struct {
	Date            time.Time
	CashRevenue     int64
	AmountSubmitted int64
	Notes           string

	EmployeeID   uuid.UUID
	EmployeeName string
}

// CreateDeposit records a cash submission. Multiple deposits per
// employee per day are allowed; settlement sums them.
func (s *DepositService) CreateDeposit(ctx context.Context, input *CreateDepositInput) (*entity.DailyDeposit, error) {
	if input.AmountSubmitted < 0 || input.CashRevenue < 0 {
		return nil, apperror.NewBadRequestError("Amounts cannot be negative")
	}
	notes := strings.TrimSpace(input.Notes)
	if len(notes) < minDepositNoteLen {
		return nil, apperror.NewBadRequestError("Notes must be at least 5 characters")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	deposit := &entity.DailyDeposit{
		Date:            date,
		EmployeeID:      input.EmployeeID,
		EmployeeName:    input.EmployeeName,
		CashRevenue:     input.CashRevenue,
		AmountSubmitted: input.AmountSubmitted,
		Notes:           notes,
	}

	if err := s.depositRepo.Create(ctx, deposit); err != nil {
		return nil, err
	}

	return deposit, nil
}

// ListDeposits lists deposits with filtering and pagination
func (s *DepositService) ListDeposits(ctx context.Context, params *repository.DepositFilterParams) (*pagination.PaginatedResult[entity.DailyDeposit], error) {
	deposits, total, err := s.depositRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(deposits, pag), nil
}
