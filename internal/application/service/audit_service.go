package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// AuditService records and queries the append-only audit trail
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends one audit entry. Metadata may be nil for events that
// carry no structured payload.
func (s *AuditService) Record(ctx context.Context, userID uuid.UUID, userName string, action enum.AuditAction, details string, metadata *entity.AuditMetadata) error {
	return s.auditRepo.Create(ctx, &entity.AuditLog{
		UserID:   userID,
		UserName: userName,
		Action:   action,
		Details:  details,
		Metadata: metadata,
	})
}

// ListLogs returns a filtered page of audit entries, newest first
func (s *AuditService) ListLogs(ctx context.Context, params *repository.AuditLogFilterParams) (*pagination.PaginatedResult[entity.AuditLog], error) {
	logs, total, err := s.auditRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(logs, pag), nil
}
