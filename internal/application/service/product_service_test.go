package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

func newProductServiceForTest() (*ProductService, *fakeProductRepo, *fakeAuditRepo) {
	productRepo := newFakeProductRepo()
	auditRepo := &fakeAuditRepo{}
	return NewProductService(productRepo, NewAuditService(auditRepo)), productRepo, auditRepo
}

func TestCreateProductAuditsAndRejectsDuplicateSKU(t *testing.T) {
	svc, _, auditRepo := newProductServiceForTest()
	ctx := context.Background()

	input := &CreateProductInput{
		Name:      "Paracetamol 500mg",
		SKU:       "PARA-500",
		UnitPrice: 250,
		CostPrice: 100,
		Stock:     50,
		ActorID:   uuid.New(),
		ActorName: "Admin",
	}
	product, err := svc.CreateProduct(ctx, input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.Status != enum.ProductActive {
		t.Errorf("status = %s, want active", product.Status)
	}
	if auditRepo.lastAction(enum.ActionProductAdded) == nil {
		t.Error("expected product_added audit entry")
	}

	if _, err := svc.CreateProduct(ctx, input); err == nil {
		t.Error("expected duplicate SKU conflict")
	}
}

func TestCreateProductRejectsNegativeValues(t *testing.T) {
	svc, _, _ := newProductServiceForTest()

	if _, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "X", SKU: "X-1", UnitPrice: -1,
	}); err == nil {
		t.Error("expected error for negative price")
	}
	if _, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "X", SKU: "X-2", Stock: -5,
	}); err == nil {
		t.Error("expected error for negative stock")
	}
}

func TestArchiveProductExcludedFromActiveListing(t *testing.T) {
	svc, productRepo, _ := newProductServiceForTest()
	ctx := context.Background()
	actorID := uuid.New()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name: "Old Syrup", SKU: "SYR-1", UnitPrice: 300, Stock: 4,
		ActorID: actorID, ActorName: "Admin",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.ArchiveProduct(ctx, product.ID, actorID, "Admin"); err != nil {
		t.Fatalf("archive: %v", err)
	}

	params := &repository.ProductFilterParams{Pagination: pagination.DefaultPagination()}
	result, err := svc.ListProducts(ctx, params)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Items) != 0 {
		t.Errorf("active listing has %d items, want 0", len(result.Items))
	}

	// the row survives for history
	got, _ := productRepo.GetByID(ctx, product.ID)
	if got == nil || got.Status != enum.ProductArchived {
		t.Errorf("archived row missing or wrong status: %+v", got)
	}
}

func TestAdjustStockAuditsBeforeAndAfter(t *testing.T) {
	svc, _, auditRepo := newProductServiceForTest()
	ctx := context.Background()
	actorID := uuid.New()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name: "Bandages", SKU: "BND-1", UnitPrice: 500, Stock: 10,
		ActorID: actorID, ActorName: "Admin",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.AdjustStock(ctx, product.ID, 25, "delivery received", actorID, "Admin")
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if updated.Stock != 25 {
		t.Errorf("stock = %d, want 25", updated.Stock)
	}

	log := auditRepo.lastAction(enum.ActionStockAdjustment)
	if log == nil {
		t.Fatal("expected stock_adjustment audit entry")
	}
	if log.Details == "" {
		t.Error("expected details describing the adjustment")
	}

	if _, err := svc.AdjustStock(ctx, product.ID, -1, "", actorID, "Admin"); err == nil {
		t.Error("expected error for negative stock")
	}
}
