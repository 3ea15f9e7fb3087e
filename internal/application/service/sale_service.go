package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/application/pos"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/apperror"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// SaleService handles checkout and sale queries
type SaleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	audit        *AuditService
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository, audit *AuditService) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		audit:        audit,
	}
}

// CheckoutItem is one line of a checkout request
type CheckoutItem struct {
	ProductID          uuid.UUID
	Quantity           int
	PrescriptionNumber string
}

// CheckoutInput represents a full checkout request
type CheckoutInput struct {
	Items         []CheckoutItem
	PaymentMethod enum.PaymentMethod
	CustomerID    *uuid.UUID
	Notes         string

	EmployeeID   uuid.UUID
	EmployeeName string
}

// Checkout turns a cart into immutable sale rows. All validation runs
// before anything is written: stock is decremented atomically across
// every line, then the sale rows are inserted. If the insert fails the
// decrement is compensated, so stock and sales never drift apart.
func (s *SaleService) Checkout(ctx context.Context, input *CheckoutInput) ([]entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	// Rebuild the cart server-side; it merges duplicate lines and caps
	// quantities at the stock snapshot before anything is written.
	cart := pos.New()
	prescriptions := make(map[uuid.UUID]string, len(input.Items))
	for _, item := range input.Items {
		product, ok := byID[item.ProductID]
		if !ok || product.Status != enum.ProductActive {
			return nil, apperror.NewNotFoundError("Product")
		}
		if product.RequiresPrescription && strings.TrimSpace(item.PrescriptionNumber) == "" {
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("%s requires a prescription number", product.Name))
		}
		if err := cart.Add(product, item.Quantity); err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		if item.PrescriptionNumber != "" {
			prescriptions[item.ProductID] = item.PrescriptionNumber
		}
	}

	lines := cart.Items()
	decrements := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		decrements[line.ProductID] = line.Quantity
	}

	customerName := ""
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		customerName = customer.Name
	}

	failedIDs, err := s.productRepo.DecrementStockBatch(ctx, decrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		names := make([]string, 0, len(failedIDs))
		for _, id := range failedIDs {
			if p, ok := byID[id]; ok {
				names = append(names, p.Name)
			} else {
				names = append(names, id.String())
			}
		}
		return nil, apperror.NewConflictError("Insufficient stock for: " + strings.Join(names, ", "))
	}

	sales := make([]entity.Sale, 0, len(lines))
	for _, line := range lines {
		sales = append(sales, entity.Sale{
			ProductID:          line.ProductID,
			ProductName:        line.ProductName,
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			TotalAmount:        line.Subtotal(),
			EmployeeID:         input.EmployeeID,
			EmployeeName:       input.EmployeeName,
			PaymentMethod:      input.PaymentMethod,
			PrescriptionNumber: prescriptions[line.ProductID],
			CustomerID:         input.CustomerID,
			CustomerName:       customerName,
			Notes:              input.Notes,
		})
	}

	if err := s.saleRepo.CreateBatch(ctx, sales); err != nil {
		// Put the stock back; checkout must not eat inventory on failure
		if restoreErr := s.productRepo.IncrementStockBatch(ctx, decrements); restoreErr != nil {
			return nil, fmt.Errorf("recording sale failed (%w) and stock restore also failed: %v", err, restoreErr)
		}
		return nil, err
	}

	// Best-effort: the sale rows are already committed, so an audit
	// outage must not make a successful checkout look failed.
	_ = s.audit.Record(ctx, input.EmployeeID, input.EmployeeName, enum.ActionSale,
		fmt.Sprintf("Sold %d item(s) for %.2f via %s", len(sales), float64(cart.Total())/100, input.PaymentMethod), nil)

	return sales, nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering and pagination, newest first
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}
