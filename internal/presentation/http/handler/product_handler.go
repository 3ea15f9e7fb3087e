package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/application/service"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/request"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/response"
	"github.com/medipos/pharmapos-api/pkg/utils"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func parseExpiryDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	expiry, ok := parseExpiryDate(req.ExpiryDate)
	if !ok {
		response.BadRequest(c, "Invalid expiry date, expected YYYY-MM-DD")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:                 req.Name,
		GenericName:          req.GenericName,
		Manufacturer:         req.Manufacturer,
		Category:             req.Category,
		DosageForm:           req.DosageForm,
		Strength:             req.Strength,
		Barcode:              req.Barcode,
		SKU:                  req.SKU,
		UnitPrice:            utils.ToCents(req.UnitPrice),
		CostPrice:            utils.ToCents(req.CostPrice),
		WholesalePrice:       utils.ToCents(req.WholesalePrice),
		Stock:                req.Stock,
		ReorderLevel:         req.ReorderLevel,
		ExpiryDate:           expiry,
		BatchNumber:          req.BatchNumber,
		Location:             req.Location,
		RequiresPrescription: req.RequiresPrescription,
		ActorID:              *userID,
		ActorName:            GetUserName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	lowStock, _ := strconv.ParseBool(c.DefaultQuery("lowStock", "false"))
	includeArchived, _ := strconv.ParseBool(c.DefaultQuery("includeArchived", "false"))

	params := &repository.ProductFilterParams{
		Pagination:      bindPagination(c),
		Search:          c.Query("search"),
		Category:        c.Query("category"),
		LowStock:        lowStock,
		IncludeArchived: includeArchived,
		SortBy:          c.Query("sortBy"),
		SortOrder:       c.Query("sortOrder"),
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	input := &service.UpdateProductInput{
		Name:                 req.Name,
		GenericName:          req.GenericName,
		Manufacturer:         req.Manufacturer,
		Category:             req.Category,
		DosageForm:           req.DosageForm,
		Strength:             req.Strength,
		Barcode:              req.Barcode,
		ReorderLevel:         req.ReorderLevel,
		BatchNumber:          req.BatchNumber,
		Location:             req.Location,
		RequiresPrescription: req.RequiresPrescription,
		ActorID:              *userID,
		ActorName:            GetUserName(c),
	}
	if req.UnitPrice != nil {
		cents := utils.ToCents(*req.UnitPrice)
		input.UnitPrice = &cents
	}
	if req.CostPrice != nil {
		cents := utils.ToCents(*req.CostPrice)
		input.CostPrice = &cents
	}
	if req.WholesalePrice != nil {
		cents := utils.ToCents(*req.WholesalePrice)
		input.WholesalePrice = &cents
	}
	if req.ExpiryDate != nil {
		expiry, ok := parseExpiryDate(*req.ExpiryDate)
		if !ok {
			response.BadRequest(c, "Invalid expiry date, expected YYYY-MM-DD")
			return
		}
		input.ExpiryDate = &expiry
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// AdjustStock handles absolute stock adjustments
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	product, err := h.productService.AdjustStock(c.Request.Context(), id, *req.Stock, req.Reason, *userID, GetUserName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", product)
}

// Archive handles archiving a product
func (h *ProductHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.productService.ArchiveProduct(c.Request.Context(), id, *userID, GetUserName(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock lists active products at or below their reorder level
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.productService.GetLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved", products)
}

// Expiring lists active products expiring soon
func (h *ProductHandler) Expiring(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "60"))

	products, err := h.productService.GetExpiring(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expiring products retrieved", products)
}
