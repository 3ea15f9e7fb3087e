package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medipos/pharmapos-api/internal/application/service"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/request"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/response"
	"github.com/medipos/pharmapos-api/pkg/utils"
)

// DepositHandler handles daily cash deposit HTTP requests
type DepositHandler struct {
	depositService *service.DepositService
	loc            *time.Location
}

// NewDepositHandler creates a new deposit handler. loc is the business
// timezone deposit dates are interpreted in.
func NewDepositHandler(depositService *service.DepositService, loc *time.Location) *DepositHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DepositHandler{depositService: depositService, loc: loc}
}

// Create handles a cash submission
func (h *DepositHandler) Create(c *gin.Context) {
	var req request.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.ParseInLocation(entity.DateLayout, req.Date, h.loc)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	deposit, err := h.depositService.CreateDeposit(c.Request.Context(), &service.CreateDepositInput{
		Date:            date,
		CashRevenue:     utils.ToCents(req.CashRevenue),
		AmountSubmitted: utils.ToCents(req.AmountSubmitted),
		Notes:           req.Notes,
		EmployeeID:      *userID,
		EmployeeName:    GetUserName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Deposit recorded successfully", deposit)
}

// List handles listing deposits. Employees see only their own
// submissions; admins see everyone's.
func (h *DepositHandler) List(c *gin.Context) {
	params := &repository.DepositFilterParams{
		Pagination: bindPagination(c),
		Date:       parseDateQuery(c, "date", h.loc),
	}
	if IsAdmin(c) {
		params.EmployeeID = parseUUIDQuery(c, "employeeId")
	} else {
		params.EmployeeID = GetUserID(c)
	}

	result, err := h.depositService.ListDeposits(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Deposits retrieved successfully", result)
}
