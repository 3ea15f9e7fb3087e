package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/apperror"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// CustomerService handles customers and their debt balances
type CustomerService struct {
	customerRepo repository.CustomerRepository
	audit        *AuditService
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, audit *AuditService) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, audit: audit}
}

// CreateCustomerInput represents the create customer input.
// InitialDebt is cents.
type CreateCustomerInput struct {
	Name        string
	Phone       string
	InitialDebt int64

	ActorID   uuid.UUID
	ActorName string
}

// CreateCustomer creates a customer and audits the addition
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:       input.Name,
		Phone:      input.Phone,
		DebtAmount: input.InitialDebt,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, input.ActorID, input.ActorName, enum.ActionCustomerAdded,
		fmt.Sprintf("Added customer %s", customer.Name), nil); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with search and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateDebtInput carries one debt adjustment. Amounts are cents;
// either field may be zero but not both.
type UpdateDebtInput struct {
	PaymentAmount  int64
	AdditionalDebt int64

	ActorID   uuid.UUID
	ActorName string
}

// UpdateDebt applies a payment and/or new debt to a customer's balance.
// The new balance is old minus payment plus additional debt, and may go
// negative (store owes the customer credit). The audit entry's metadata
// is what settlement reconciliation reads, so it is written with the
// exact amounts and the update fails if the audit write fails.
func (s *CustomerService) UpdateDebt(ctx context.Context, id uuid.UUID, input *UpdateDebtInput) (*entity.Customer, error) {
	if input.PaymentAmount < 0 || input.AdditionalDebt < 0 {
		return nil, apperror.NewBadRequestError("Amounts cannot be negative")
	}
	if input.PaymentAmount == 0 && input.AdditionalDebt == 0 {
		return nil, apperror.NewBadRequestError("Nothing to update")
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	oldDebt := customer.DebtAmount
	customer.DebtAmount = oldDebt - input.PaymentAmount + input.AdditionalDebt

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	metadata := &entity.AuditMetadata{
		CustomerID:    &customer.ID,
		OldDebt:       oldDebt,
		NewDebt:       customer.DebtAmount,
		PaymentAmount: input.PaymentAmount,
	}
	details := fmt.Sprintf("Updated debt for %s: %.2f -> %.2f",
		customer.Name, float64(oldDebt)/100, float64(customer.DebtAmount)/100)
	if err := s.audit.Record(ctx, input.ActorID, input.ActorName, enum.ActionDebtUpdated, details, metadata); err != nil {
		return nil, err
	}

	return customer, nil
}
