package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/medipos/pharmapos-api/internal/application/service"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/internal/presentation/http/dto/response"
)

// AuditHandler handles audit log HTTP requests
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles listing audit log entries
func (h *AuditHandler) List(c *gin.Context) {
	params := &repository.AuditLogFilterParams{
		Pagination: bindPagination(c),
		Search:     c.Query("search"),
		UserID:     parseUUIDQuery(c, "userId"),
	}
	if action := c.Query("action"); action != "" {
		a := enum.AuditAction(action)
		if !a.Valid() {
			response.BadRequest(c, "Unknown audit action")
			return
		}
		params.Action = &a
	}

	result, err := h.auditService.ListLogs(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Audit logs retrieved successfully", result)
}
