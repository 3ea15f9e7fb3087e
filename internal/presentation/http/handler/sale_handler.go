package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/application/service"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/request"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/response"
)

// SaleHandler handles checkout, sale history and export HTTP requests
type SaleHandler struct {
	saleService   *service.SaleService
	exportService *service.ExportService
	loc           *time.Location
}

// NewSaleHandler creates a new sale handler. loc is the business
// timezone date query parameters are interpreted in.
func NewSaleHandler(saleService *service.SaleService, exportService *service.ExportService, loc *time.Location) *SaleHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &SaleHandler{saleService: saleService, exportService: exportService, loc: loc}
}

// Checkout handles a POS checkout
func (h *SaleHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	input := &service.CheckoutInput{
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
		EmployeeID:    *userID,
		EmployeeName:  GetUserName(c),
	}
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID in cart")
			return
		}
		input.Items = append(input.Items, service.CheckoutItem{
			ProductID:          productID,
			Quantity:           item.Quantity,
			PrescriptionNumber: item.PrescriptionNumber,
		})
	}
	if req.CustomerID != nil {
		customerID, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		input.CustomerID = &customerID
	}

	sales, err := h.saleService.Checkout(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", sales)
}

// List handles listing sales
func (h *SaleHandler) List(c *gin.Context) {
	params := &repository.SaleFilterParams{
		Pagination: bindPagination(c),
		Search:     c.Query("search"),
		EmployeeID: parseUUIDQuery(c, "employeeId"),
	}
	if method := c.Query("paymentMethod"); method != "" {
		m := enum.PaymentMethod(method)
		params.PaymentMethod = &m
	}
	params.From, params.To = dateRange(c, h.loc)

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles retrieving a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// ExportCSV streams matching sales as a CSV download
func (h *SaleHandler) ExportCSV(c *gin.Context) {
	h.export(c, "csv")
}

// ExportXLSX streams matching sales as an Excel download
func (h *SaleHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "xlsx")
}

// export serializes the same view the sales list shows, so every list
// filter is honored here too.
func (h *SaleHandler) export(c *gin.Context, format string) {
	params := &repository.SaleRangeParams{
		Search:     c.Query("search"),
		EmployeeID: parseUUIDQuery(c, "employeeId"),
	}
	if method := c.Query("paymentMethod"); method != "" {
		m := enum.PaymentMethod(method)
		params.PaymentMethod = &m
	}
	params.From, params.To = dateRange(c, h.loc)

	var file *service.ExportFile
	var err error
	if format == "xlsx" {
		file, err = h.exportService.ExportXLSX(c.Request.Context(), params)
	} else {
		file, err = h.exportService.ExportCSV(c.Request.Context(), params)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(200, file.ContentType, file.Data)
}
