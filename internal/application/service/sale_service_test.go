package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/pkg/apperror"
)

func newSaleServiceForTest() (*SaleService, *fakeProductRepo, *fakeSaleRepo, *fakeCustomerRepo, *fakeAuditRepo) {
	productRepo := newFakeProductRepo()
	saleRepo := &fakeSaleRepo{}
	customerRepo := newFakeCustomerRepo()
	auditRepo := &fakeAuditRepo{}
	svc := NewSaleService(saleRepo, productRepo, customerRepo, NewAuditService(auditRepo))
	return svc, productRepo, saleRepo, customerRepo, auditRepo
}

func seedProduct(t *testing.T, repo *fakeProductRepo, name string, priceCents int64, stock int, requiresRx bool) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:                 name,
		SKU:                  "SKU-" + name,
		UnitPrice:            priceCents,
		Stock:                stock,
		RequiresPrescription: requiresRx,
		Status:               enum.ProductActive,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestCheckoutCreatesSalesAndDecrementsStock(t *testing.T) {
	svc, productRepo, saleRepo, _, auditRepo := newSaleServiceForTest()
	ctx := context.Background()

	paracetamol := seedProduct(t, productRepo, "Paracetamol 500mg", 250, 10, false)
	ibuprofen := seedProduct(t, productRepo, "Ibuprofen 400mg", 400, 5, false)

	employeeID := uuid.New()
	sales, err := svc.Checkout(ctx, &CheckoutInput{
		Items: []CheckoutItem{
			{ProductID: paracetamol.ID, Quantity: 2},
			{ProductID: ibuprofen.ID, Quantity: 1},
		},
		PaymentMethod: enum.PaymentCash,
		EmployeeID:    employeeID,
		EmployeeName:  "Alice",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if len(sales) != 2 {
		t.Fatalf("expected 2 sale lines, got %d", len(sales))
	}
	if sales[0].ProductName != "Paracetamol 500mg" || sales[0].TotalAmount != 500 {
		t.Errorf("line 0 = %s/%d, want Paracetamol 500mg/500", sales[0].ProductName, sales[0].TotalAmount)
	}

	got, _ := productRepo.GetByID(ctx, paracetamol.ID)
	if got.Stock != 8 {
		t.Errorf("paracetamol stock = %d, want 8", got.Stock)
	}
	got, _ = productRepo.GetByID(ctx, ibuprofen.ID)
	if got.Stock != 4 {
		t.Errorf("ibuprofen stock = %d, want 4", got.Stock)
	}

	if len(saleRepo.sales) != 2 {
		t.Errorf("persisted sales = %d, want 2", len(saleRepo.sales))
	}
	if auditRepo.lastAction(enum.ActionSale) == nil {
		t.Error("expected a sale audit entry")
	}
}

func TestCheckoutMissingPrescriptionWritesNothing(t *testing.T) {
	svc, productRepo, saleRepo, _, auditRepo := newSaleServiceForTest()
	ctx := context.Background()

	otc := seedProduct(t, productRepo, "Vitamin C", 150, 10, false)
	rx := seedProduct(t, productRepo, "Amoxicillin 500mg", 1200, 10, true)

	_, err := svc.Checkout(ctx, &CheckoutInput{
		Items: []CheckoutItem{
			{ProductID: otc.ID, Quantity: 1},
			{ProductID: rx.ID, Quantity: 1}, // no prescription number
		},
		PaymentMethod: enum.PaymentCash,
		EmployeeID:    uuid.New(),
		EmployeeName:  "Alice",
	})
	if err == nil {
		t.Fatal("expected prescription error")
	}

	// validation failed before any write: no sales, no stock movement
	if len(saleRepo.sales) != 0 {
		t.Errorf("persisted sales = %d, want 0", len(saleRepo.sales))
	}
	got, _ := productRepo.GetByID(ctx, otc.ID)
	if got.Stock != 10 {
		t.Errorf("otc stock = %d, want 10", got.Stock)
	}
	if len(auditRepo.logs) != 0 {
		t.Errorf("audit entries = %d, want 0", len(auditRepo.logs))
	}
}

func TestCheckoutWithPrescriptionSucceeds(t *testing.T) {
	svc, productRepo, _, _, _ := newSaleServiceForTest()

	rx := seedProduct(t, productRepo, "Amoxicillin 500mg", 1200, 10, true)

	sales, err := svc.Checkout(context.Background(), &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: rx.ID, Quantity: 1, PrescriptionNumber: "RX-2025-0042"}},
		PaymentMethod: enum.PaymentCard,
		EmployeeID:    uuid.New(),
		EmployeeName:  "Alice",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if sales[0].PrescriptionNumber != "RX-2025-0042" {
		t.Errorf("prescription = %q, want RX-2025-0042", sales[0].PrescriptionNumber)
	}
}

func TestCheckoutInsufficientStock(t *testing.T) {
	svc, productRepo, saleRepo, _, _ := newSaleServiceForTest()

	p := seedProduct(t, productRepo, "Insulin", 4500, 2, false)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: p.ID, Quantity: 3}},
		PaymentMethod: enum.PaymentCash,
		EmployeeID:    uuid.New(),
		EmployeeName:  "Alice",
	})
	if err == nil {
		t.Fatal("expected stock error")
	}
	if len(saleRepo.sales) != 0 {
		t.Errorf("persisted sales = %d, want 0", len(saleRepo.sales))
	}
	got, _ := productRepo.GetByID(context.Background(), p.ID)
	if got.Stock != 2 {
		t.Errorf("stock = %d, want 2", got.Stock)
	}
}

func TestCheckoutArchivedProductRejected(t *testing.T) {
	svc, productRepo, _, _, _ := newSaleServiceForTest()
	ctx := context.Background()

	p := seedProduct(t, productRepo, "Old Syrup", 300, 10, false)
	if err := productRepo.Archive(ctx, p.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	_, err := svc.Checkout(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: p.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentCash,
		EmployeeID:    uuid.New(),
		EmployeeName:  "Alice",
	})
	appErr := apperror.GetAppError(err)
	if appErr.Code != 404 {
		t.Fatalf("expected 404 for archived product, got %d (%v)", appErr.Code, err)
	}
}

func TestCheckoutRestoresStockWhenInsertFails(t *testing.T) {
	svc, productRepo, saleRepo, _, _ := newSaleServiceForTest()
	ctx := context.Background()

	p := seedProduct(t, productRepo, "Paracetamol 500mg", 250, 10, false)
	saleRepo.failNext = context.DeadlineExceeded

	_, err := svc.Checkout(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: p.ID, Quantity: 4}},
		PaymentMethod: enum.PaymentCash,
		EmployeeID:    uuid.New(),
		EmployeeName:  "Alice",
	})
	if err == nil {
		t.Fatal("expected insert failure")
	}

	got, _ := productRepo.GetByID(ctx, p.ID)
	if got.Stock != 10 {
		t.Errorf("stock after compensation = %d, want 10", got.Stock)
	}
}

func TestCheckoutSucceedsWhenAuditIsDown(t *testing.T) {
	svc, productRepo, saleRepo, _, auditRepo := newSaleServiceForTest()
	ctx := context.Background()

	p := seedProduct(t, productRepo, "Paracetamol 500mg", 250, 10, false)
	auditRepo.failNext = context.DeadlineExceeded

	// the sale is committed before the audit write; an audit outage
	// must not turn it into a client-visible failure
	sales, err := svc.Checkout(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: p.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentCash,
		EmployeeID:    uuid.New(),
		EmployeeName:  "Alice",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(sales) != 1 || len(saleRepo.sales) != 1 {
		t.Fatalf("sale lines returned %d, persisted %d, want 1/1", len(sales), len(saleRepo.sales))
	}
	got, _ := productRepo.GetByID(ctx, p.ID)
	if got.Stock != 9 {
		t.Errorf("stock = %d, want 9", got.Stock)
	}
}

func TestCheckoutAttachesCustomer(t *testing.T) {
	svc, productRepo, _, customerRepo, _ := newSaleServiceForTest()
	ctx := context.Background()

	p := seedProduct(t, productRepo, "Cough Syrup", 800, 5, false)
	customer := &entity.Customer{Name: "John Mwangi", Phone: "0712345678"}
	if err := customerRepo.Create(ctx, customer); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	sales, err := svc.Checkout(ctx, &CheckoutInput{
		Items:         []CheckoutItem{{ProductID: p.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentCash,
		CustomerID:    &customer.ID,
		EmployeeID:    uuid.New(),
		EmployeeName:  "Alice",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if sales[0].CustomerName != "John Mwangi" {
		t.Errorf("customer name = %q, want John Mwangi", sales[0].CustomerName)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _, _, _ := newSaleServiceForTest()

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		PaymentMethod: enum.PaymentCash,
		EmployeeID:    uuid.New(),
		EmployeeName:  "Alice",
	})
	if err == nil {
		t.Fatal("expected empty cart error")
	}
}
