package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/medipos/pharmapos-api/internal/application/service"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/response"
)

// SettlementHandler handles settlement reconciliation HTTP requests
type SettlementHandler struct {
	settlementService *service.SettlementService
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// History returns per-employee per-day reconciliation records
func (h *SettlementHandler) History(c *gin.Context) {
	from, to := dateRange(c, h.settlementService.Location())
	employeeID := parseUUIDQuery(c, "employeeId")

	records, err := h.settlementService.DailyHistory(c.Request.Context(), from, to, employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settlement history retrieved", records)
}

// Balances returns every employee's lifetime settlement balance
func (h *SettlementHandler) Balances(c *gin.Context) {
	balances, err := h.settlementService.LifetimeBalances(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settlement balances retrieved", balances)
}

// MyBalance returns the authenticated employee's own settlement balance
func (h *SettlementHandler) MyBalance(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	balance, err := h.settlementService.EmployeeBalance(c.Request.Context(), *userID, GetUserName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settlement balance retrieved", balance)
}
