package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/application/service"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/request"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/response"
	"github.com/medipos/pharmapos-api/pkg/utils"
)

// WholesalerHandler handles wholesaler HTTP requests
type WholesalerHandler struct {
	wholesalerService *service.WholesalerService
}

// NewWholesalerHandler creates a new wholesaler handler
func NewWholesalerHandler(wholesalerService *service.WholesalerService) *WholesalerHandler {
	return &WholesalerHandler{wholesalerService: wholesalerService}
}

// Create handles wholesaler creation
func (h *WholesalerHandler) Create(c *gin.Context) {
	var req request.CreateWholesalerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	wholesaler, err := h.wholesalerService.CreateWholesaler(c.Request.Context(), &service.WholesalerInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Balance:       utils.ToCents(req.Balance),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Wholesaler created successfully", wholesaler)
}

// List handles listing wholesalers
func (h *WholesalerHandler) List(c *gin.Context) {
	result, err := h.wholesalerService.ListWholesalers(c.Request.Context(), bindPagination(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Wholesalers retrieved successfully", result)
}

// Get handles retrieving a single wholesaler
func (h *WholesalerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid wholesaler ID")
		return
	}

	wholesaler, err := h.wholesalerService.GetWholesaler(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wholesaler retrieved successfully", wholesaler)
}

// Update handles updating a wholesaler
func (h *WholesalerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid wholesaler ID")
		return
	}

	var req request.UpdateWholesalerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input := &service.UpdateWholesalerInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	}
	if req.Balance != nil {
		cents := utils.ToCents(*req.Balance)
		input.Balance = &cents
	}

	wholesaler, err := h.wholesalerService.UpdateWholesaler(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wholesaler updated successfully", wholesaler)
}

// Delete handles deleting a wholesaler
func (h *WholesalerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid wholesaler ID")
		return
	}

	if err := h.wholesalerService.DeleteWholesaler(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
