package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	domainRepo "github.com/medipos/pharmapos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) domainRepo.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepository) List(ctx context.Context, params *domainRepo.AuditLogFilterParams) ([]entity.AuditLog, int64, error) {
	var logs []entity.AuditLog
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AuditLog{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("user_name ILIKE ? OR details ILIKE ?", like, like)
	}

	if params.Action != nil {
		query = query.Where("action = ?", *params.Action)
	}

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("timestamp DESC").
		Find(&logs).Error

	return logs, total, err
}

func (r *auditLogRepository) ListRange(ctx context.Context, from, to *time.Time, action *enum.AuditAction, userID *uuid.UUID) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog

	query := r.db.WithContext(ctx).Model(&entity.AuditLog{})
	if from != nil {
		query = query.Where("timestamp >= ?", *from)
	}
	if to != nil {
		query = query.Where("timestamp < ?", *to)
	}
	if action != nil {
		query = query.Where("action = ?", *action)
	}
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	err := query.Order("timestamp DESC").Find(&logs).Error
	return logs, err
}
