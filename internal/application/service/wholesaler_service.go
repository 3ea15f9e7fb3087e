package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/apperror"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// WholesalerService handles supplier records and their balances
type WholesalerService struct {
	wholesalerRepo repository.WholesalerRepository
}

// NewWholesalerService creates a new wholesaler service
func NewWholesalerService(wholesalerRepo repository.WholesalerRepository) *WholesalerService {
	return &WholesalerService{wholesalerRepo: wholesalerRepo}
}

// WholesalerInput represents create/update input. Balance is cents; a
// positive balance means the business owes the wholesaler.
type WholesalerInput struct {
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Balance       int64
}

// CreateWholesaler creates a new wholesaler record
func (s *WholesalerService) CreateWholesaler(ctx context.Context, input *WholesalerInput) (*entity.Wholesaler, error) {
	wholesaler := &entity.Wholesaler{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		Balance:       input.Balance,
	}

	if err := s.wholesalerRepo.Create(ctx, wholesaler); err != nil {
		return nil, err
	}

	return wholesaler, nil
}

// GetWholesaler retrieves a wholesaler by ID
func (s *WholesalerService) GetWholesaler(ctx context.Context, id uuid.UUID) (*entity.Wholesaler, error) {
	wholesaler, err := s.wholesalerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wholesaler == nil {
		return nil, apperror.NewNotFoundError("Wholesaler")
	}
	return wholesaler, nil
}

// ListWholesalers lists wholesalers with search and pagination
func (s *WholesalerService) ListWholesalers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Wholesaler], error) {
	wholesalers, total, err := s.wholesalerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(wholesalers, pag), nil
}

// UpdateWholesalerInput represents the update input; nil fields are
// left unchanged
type UpdateWholesalerInput struct {
	Name          *string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	Balance       *int64
}

// UpdateWholesaler updates a wholesaler record
func (s *WholesalerService) UpdateWholesaler(ctx context.Context, id uuid.UUID, input *UpdateWholesalerInput) (*entity.Wholesaler, error) {
	wholesaler, err := s.wholesalerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wholesaler == nil {
		return nil, apperror.NewNotFoundError("Wholesaler")
	}

	if input.Name != nil {
		wholesaler.Name = *input.Name
	}
	if input.ContactPerson != nil {
		wholesaler.ContactPerson = *input.ContactPerson
	}
	if input.Phone != nil {
		wholesaler.Phone = *input.Phone
	}
	if input.Email != nil {
		wholesaler.Email = *input.Email
	}
	if input.Address != nil {
		wholesaler.Address = *input.Address
	}
	if input.Balance != nil {
		wholesaler.Balance = *input.Balance
	}

	if err := s.wholesalerRepo.Update(ctx, wholesaler); err != nil {
		return nil, err
	}

	return wholesaler, nil
}

// DeleteWholesaler removes a wholesaler record
func (s *WholesalerService) DeleteWholesaler(ctx context.Context, id uuid.UUID) error {
	wholesaler, err := s.wholesalerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if wholesaler == nil {
		return apperror.NewNotFoundError("Wholesaler")
	}

	return s.wholesalerRepo.Delete(ctx, id)
}
