package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/application/settlement"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
)

// SettlementService loads the raw records the settlement aggregation
// needs and delegates the math to the settlement package
type SettlementService struct {
	saleRepo    repository.SaleRepository
	auditRepo   repository.AuditLogRepository
	depositRepo repository.DepositRepository
	loc         *time.Location
}

// NewSettlementService creates a new settlement service. loc is the
// business timezone used to bucket timestamps into calendar days.
func NewSettlementService(saleRepo repository.SaleRepository, auditRepo repository.AuditLogRepository, depositRepo repository.DepositRepository, loc *time.Location) *SettlementService {
	if loc == nil {
		loc = time.UTC
	}
	return &SettlementService{
		saleRepo:    saleRepo,
		auditRepo:   auditRepo,
		depositRepo: depositRepo,
		loc:         loc,
	}
}

// DailyHistory reconciles expected against submitted cash per employee
// per day in [from, to). Nil bounds are open-ended; a nil employeeID
// covers everyone.
func (s *SettlementService) DailyHistory(ctx context.Context, from, to *time.Time, employeeID *uuid.UUID) ([]settlement.DailyRecord, error) {
	sales, err := s.saleRepo.ListRange(ctx, &repository.SaleRangeParams{From: from, To: to, EmployeeID: employeeID})
	if err != nil {
		return nil, err
	}

	action := enum.ActionDebtUpdated
	logs, err := s.auditRepo.ListRange(ctx, from, to, &action, employeeID)
	if err != nil {
		return nil, err
	}

	deposits, err := s.depositRepo.ListRange(ctx, from, to, employeeID)
	if err != nil {
		return nil, err
	}

	return settlement.DailyHistory(sales, logs, deposits, s.loc), nil
}

// LifetimeBalances returns every employee's running settlement balance
// over all history
func (s *SettlementService) LifetimeBalances(ctx context.Context) ([]settlement.EmployeeBalance, error) {
	records, err := s.DailyHistory(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return settlement.LifetimeBalances(records), nil
}

// EmployeeBalance returns one employee's running settlement balance.
// An employee with no settlement history has a zero, balanced record.
func (s *SettlementService) EmployeeBalance(ctx context.Context, employeeID uuid.UUID, employeeName string) (*settlement.EmployeeBalance, error) {
	records, err := s.DailyHistory(ctx, nil, nil, &employeeID)
	if err != nil {
		return nil, err
	}

	balances := settlement.LifetimeBalances(records)
	if len(balances) == 0 {
		return &settlement.EmployeeBalance{
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Status:       settlement.StatusBalanced,
		}, nil
	}
	return &balances[0], nil
}

// Location returns the business timezone settlement buckets with
func (s *SettlementService) Location() *time.Location {
	return s.loc
}
