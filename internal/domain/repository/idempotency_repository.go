package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for stored idempotent responses
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	DeleteExpired(ctx context.Context) error
}
