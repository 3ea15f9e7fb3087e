package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/medipos/pharmapos-api/internal/application/service"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles the admin overview HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns today's figures and the system settlement balance
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved", stats)
}
