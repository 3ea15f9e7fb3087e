package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// exportHeader is the column contract for sales exports; downstream
// spreadsheets key on these exact names.
var exportHeader = []string{
	"Date", "Time", "Product", "Quantity", "Total Amount",
	"Payment Method", "Employee", "Customer", "Prescription",
}

// ExportService renders sales history as downloadable files
type ExportService struct {
	saleRepo repository.SaleRepository
	loc      *time.Location
}

// NewExportService creates a new export service
func NewExportService(saleRepo repository.SaleRepository, loc *time.Location) *ExportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ExportService{saleRepo: saleRepo, loc: loc}
}

// ExportFile is a rendered export ready to stream to the client
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (s *ExportService) loadRows(ctx context.Context, params *repository.SaleRangeParams) ([][]string, error) {
	sales, err := s.saleRepo.ListRange(ctx, params)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sales))
	for i := range sales {
		sale := &sales[i]
		ts := sale.Timestamp.In(s.loc)
		customer := sale.CustomerName
		if customer == "" {
			customer = "Walk-in"
		}
		rows = append(rows, []string{
			ts.Format(entity.DateLayout),
			ts.Format("15:04:05"),
			sale.ProductName,
			strconv.Itoa(sale.Quantity),
			fmt.Sprintf("%.2f", float64(sale.TotalAmount)/100),
			sale.PaymentMethod.String(),
			sale.EmployeeName,
			customer,
			sale.PrescriptionNumber,
		})
	}
	return rows, nil
}

// ExportCSV renders matching sales as CSV, newest first, honoring the
// same filters as the sales list. An empty result still produces the
// header row.
func (s *ExportService) ExportCSV(ctx context.Context, params *repository.SaleRangeParams) (*ExportFile, error) {
	rows, err := s.loadRows(ctx, params)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    s.filename("csv"),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// ExportXLSX renders matching sales as an Excel workbook with the same
// columns as the CSV export
func (s *ExportService) ExportXLSX(ctx context.Context, params *repository.SaleRangeParams) (*ExportFile, error) {
	rows, err := s.loadRows(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	f.SetSheetName("Sheet1", sheet)

	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    s.filename("xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ExportService) filename(ext string) string {
	return fmt.Sprintf("sales_export_%s.%s", time.Now().In(s.loc).Format(entity.DateLayout), ext)
}
