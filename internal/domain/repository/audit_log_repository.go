package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// AuditLogRepository defines the interface for the append-only audit log
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, params *AuditLogFilterParams) ([]entity.AuditLog, int64, error)
	// ListRange returns all entries in [from, to), optionally filtered by
	// action and actor. Nil bounds are open-ended.
	ListRange(ctx context.Context, from, to *time.Time, action *enum.AuditAction, userID *uuid.UUID) ([]entity.AuditLog, error)
}

// AuditLogFilterParams contains filtering parameters for audit queries
type AuditLogFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Action     *enum.AuditAction
	UserID     *uuid.UUID
}
