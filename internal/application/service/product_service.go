package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/apperror"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// ProductService handles product catalog and inventory operations
type ProductService struct {
	productRepo repository.ProductRepository
	audit       *AuditService
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, audit *AuditService) *ProductService {
	return &ProductService{productRepo: productRepo, audit: audit}
}

// CreateProductInput represents the create product input. Prices are cents.
type CreateProductInput struct {
	Name                 string
	GenericName          string
	Manufacturer         string
	Category             string
	DosageForm           string
	Strength             string
	Barcode              string
	SKU                  string
	UnitPrice            int64
	CostPrice            int64
	WholesalePrice       int64
	Stock                int
	ReorderLevel         int
	ExpiryDate           time.Time
	BatchNumber          string
	Location             string
	RequiresPrescription bool

	ActorID   uuid.UUID
	ActorName string
}

// CreateProduct adds a product to the catalog and audits the addition
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.UnitPrice < 0 || input.CostPrice < 0 || input.WholesalePrice < 0 {
		return nil, apperror.NewBadRequestError("Prices cannot be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}

	existing, err := s.productRepo.GetBySKU(ctx, input.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this SKU already exists")
	}

	product := &entity.Product{
		Name:                 input.Name,
		GenericName:          input.GenericName,
		Manufacturer:         input.Manufacturer,
		Category:             input.Category,
		DosageForm:           input.DosageForm,
		Strength:             input.Strength,
		Barcode:              input.Barcode,
		SKU:                  input.SKU,
		UnitPrice:            input.UnitPrice,
		CostPrice:            input.CostPrice,
		WholesalePrice:       input.WholesalePrice,
		Stock:                input.Stock,
		ReorderLevel:         input.ReorderLevel,
		ExpiryDate:           input.ExpiryDate,
		BatchNumber:          input.BatchNumber,
		Location:             input.Location,
		RequiresPrescription: input.RequiresPrescription,
		Status:               enum.ProductActive,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, input.ActorID, input.ActorName, enum.ActionProductAdded,
		fmt.Sprintf("Added product %s (SKU %s)", product.Name, product.SKU), nil); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering, sorting and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input. Nil fields are
// left unchanged; prices are cents.
type UpdateProductInput struct {
	Name                 *string
	GenericName          *string
	Manufacturer         *string
	Category             *string
	DosageForm           *string
	Strength             *string
	Barcode              *string
	UnitPrice            *int64
	CostPrice            *int64
	WholesalePrice       *int64
	ReorderLevel         *int
	ExpiryDate           *time.Time
	BatchNumber          *string
	Location             *string
	RequiresPrescription *bool

	ActorID   uuid.UUID
	ActorName string
}

// UpdateProduct updates catalog fields and audits the change. Stock is
// deliberately not updatable here; it moves only through checkout and
// AdjustStock so every movement leaves a trace.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.GenericName != nil {
		product.GenericName = *input.GenericName
	}
	if input.Manufacturer != nil {
		product.Manufacturer = *input.Manufacturer
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.DosageForm != nil {
		product.DosageForm = *input.DosageForm
	}
	if input.Strength != nil {
		product.Strength = *input.Strength
	}
	if input.Barcode != nil {
		product.Barcode = *input.Barcode
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.CostPrice != nil {
		if *input.CostPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		product.CostPrice = *input.CostPrice
	}
	if input.WholesalePrice != nil {
		if *input.WholesalePrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		product.WholesalePrice = *input.WholesalePrice
	}
	if input.ReorderLevel != nil {
		product.ReorderLevel = *input.ReorderLevel
	}
	if input.ExpiryDate != nil {
		product.ExpiryDate = *input.ExpiryDate
	}
	if input.BatchNumber != nil {
		product.BatchNumber = *input.BatchNumber
	}
	if input.Location != nil {
		product.Location = *input.Location
	}
	if input.RequiresPrescription != nil {
		product.RequiresPrescription = *input.RequiresPrescription
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, input.ActorID, input.ActorName, enum.ActionProductUpdated,
		fmt.Sprintf("Updated product %s (SKU %s)", product.Name, product.SKU), nil); err != nil {
		return nil, err
	}

	return product, nil
}

// AdjustStock sets a product's stock to an absolute count, for
// receiving deliveries and stocktake corrections. Every adjustment is
// audited with the before and after counts.
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, newStock int, reason string, actorID uuid.UUID, actorName string) (*entity.Product, error) {
	if newStock < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	oldStock := product.Stock
	product.Stock = newStock
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Adjusted stock of %s from %d to %d", product.Name, oldStock, newStock)
	if reason != "" {
		details += ": " + reason
	}
	if err := s.audit.Record(ctx, actorID, actorName, enum.ActionStockAdjustment, details, nil); err != nil {
		return nil, err
	}

	return product, nil
}

// ArchiveProduct removes a product from active inventory without
// deleting its row
func (s *ProductService) ArchiveProduct(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorName string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.Archive(ctx, id); err != nil {
		return err
	}

	return s.audit.Record(ctx, actorID, actorName, enum.ActionProductUpdated,
		fmt.Sprintf("Archived product %s (SKU %s)", product.Name, product.SKU), nil)
}

// GetLowStock returns active products at or below their reorder level
func (s *ProductService) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// GetExpiring returns active products expiring within the given number
// of days, soonest first. Default window is two months.
func (s *ProductService) GetExpiring(ctx context.Context, days int) ([]entity.Product, error) {
	if days <= 0 {
		days = 60
	}
	cutoff := time.Now().AddDate(0, 0, days)
	return s.productRepo.GetExpiringBefore(ctx, cutoff)
}
