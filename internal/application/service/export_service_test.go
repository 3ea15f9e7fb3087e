package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
)

func TestExportCSVEmptyHasHeaderOnly(t *testing.T) {
	svc := NewExportService(&fakeSaleRepo{}, time.UTC)

	file, err := svc.ExportCSV(context.Background(), &repository.SaleRangeParams{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	got := strings.TrimRight(string(file.Data), "\n")
	want := "Date,Time,Product,Quantity,Total Amount,Payment Method,Employee,Customer,Prescription"
	if got != want {
		t.Errorf("csv = %q, want header only", got)
	}
	if !strings.HasPrefix(file.Filename, "sales_export_") || !strings.HasSuffix(file.Filename, ".csv") {
		t.Errorf("filename = %q", file.Filename)
	}
	if file.ContentType != "text/csv" {
		t.Errorf("content type = %q", file.ContentType)
	}
}

func TestExportCSVRows(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []entity.Sale{
		{
			ID:            uuid.New(),
			ProductID:     uuid.New(),
			ProductName:   `Syrup "Extra", 200ml`,
			Quantity:      2,
			UnitPrice:     450,
			TotalAmount:   900,
			EmployeeID:    uuid.New(),
			EmployeeName:  "Alice",
			PaymentMethod: enum.PaymentCash,
			Timestamp:     time.Date(2025, 3, 10, 14, 5, 9, 0, time.UTC),
		},
	}}
	svc := NewExportService(saleRepo, time.UTC)

	file, err := svc.ExportCSV(context.Background(), &repository.SaleRangeParams{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(file.Data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// commas and quotes in the product name are escaped, unnamed
	// customers become Walk-in
	row := lines[1]
	if !strings.Contains(row, `"Syrup ""Extra"", 200ml"`) {
		t.Errorf("product not quoted correctly: %s", row)
	}
	if !strings.Contains(row, "2025-03-10,14:05:09") {
		t.Errorf("date/time wrong: %s", row)
	}
	if !strings.Contains(row, "9.00") {
		t.Errorf("amount not decimal: %s", row)
	}
	if !strings.Contains(row, "Walk-in") {
		t.Errorf("missing Walk-in default: %s", row)
	}
}

func TestExportCSVHonorsListFilters(t *testing.T) {
	employeeID := uuid.New()
	saleRepo := &fakeSaleRepo{sales: []entity.Sale{
		{
			ID:            uuid.New(),
			ProductID:     uuid.New(),
			ProductName:   "Amoxicillin 250mg",
			Quantity:      1,
			TotalAmount:   1200,
			EmployeeID:    employeeID,
			EmployeeName:  "Alice",
			PaymentMethod: enum.PaymentCash,
			Timestamp:     time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            uuid.New(),
			ProductID:     uuid.New(),
			ProductName:   "Ibuprofen 400mg",
			Quantity:      1,
			TotalAmount:   800,
			EmployeeID:    employeeID,
			EmployeeName:  "Alice",
			PaymentMethod: enum.PaymentCard,
			Timestamp:     time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewExportService(saleRepo, time.UTC)

	// the payment-method facet carries through to the file
	card := enum.PaymentCard
	file, err := svc.ExportCSV(context.Background(), &repository.SaleRangeParams{PaymentMethod: &card})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(file.Data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Ibuprofen 400mg") {
		t.Errorf("wrong row exported: %s", lines[1])
	}

	// so does text search
	file, err = svc.ExportCSV(context.Background(), &repository.SaleRangeParams{Search: "Amoxicillin"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines = strings.Split(strings.TrimRight(string(file.Data), "\n"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "Amoxicillin 250mg") {
		t.Errorf("search filter not applied: %q", lines)
	}
}

func TestExportXLSX(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []entity.Sale{
		{
			ID:            uuid.New(),
			ProductID:     uuid.New(),
			ProductName:   "Paracetamol 500mg",
			Quantity:      1,
			UnitPrice:     250,
			TotalAmount:   250,
			EmployeeName:  "Alice",
			PaymentMethod: enum.PaymentCard,
			Timestamp:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewExportService(saleRepo, time.UTC)

	file, err := svc.ExportXLSX(context.Background(), &repository.SaleRangeParams{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(file.Data) == 0 {
		t.Error("empty workbook")
	}
	if !strings.HasSuffix(file.Filename, ".xlsx") {
		t.Errorf("filename = %q", file.Filename)
	}
	if file.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", file.ContentType)
	}
}
