package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// AuditMetadata is the structured payload attached to debt-update events.
// PaymentAmount is the only figure the settlement aggregator trusts for
// "debt settled in cash"; amounts are cents.
type AuditMetadata struct {
	CustomerID    *uuid.UUID `json:"customerId,omitempty"`
	OldDebt       int64      `json:"oldDebt"`
	NewDebt       int64      `json:"newDebt"`
	PaymentAmount int64      `json:"paymentAmount"`
}

// AuditLog is an append-only event record written by the services
type AuditLog struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"userId"`
	UserName  string           `gorm:"size:255;not null" json:"userName"`
	Action    enum.AuditAction `gorm:"size:50;not null;index" json:"action"`
	Details   string           `gorm:"type:text;not null" json:"details"`
	Metadata  *AuditMetadata   `gorm:"serializer:json" json:"-"`
	Timestamp time.Time        `gorm:"not null;index" json:"timestamp"`
}

// BeforeCreate generates a UUID and stamps the event time
func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now()
	}
	return nil
}

// TableName returns the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}

// DebtPayment returns the cent amount of the debt payment carried by a
// debt_updated entry, or 0 when the entry carries none.
func (l *AuditLog) DebtPayment() int64 {
	if l.Action != enum.ActionDebtUpdated || l.Metadata == nil {
		return 0
	}
	if l.Metadata.PaymentAmount <= 0 {
		return 0
	}
	return l.Metadata.PaymentAmount
}

// MarshalJSON converts metadata cent amounts to decimals for API responses
func (l AuditLog) MarshalJSON() ([]byte, error) {
	type Alias AuditLog
	var meta *struct {
		CustomerID    *uuid.UUID `json:"customerId,omitempty"`
		OldDebt       float64    `json:"oldDebt"`
		NewDebt       float64    `json:"newDebt"`
		PaymentAmount float64    `json:"paymentAmount"`
	}
	if l.Metadata != nil {
		meta = &struct {
			CustomerID    *uuid.UUID `json:"customerId,omitempty"`
			OldDebt       float64    `json:"oldDebt"`
			NewDebt       float64    `json:"newDebt"`
			PaymentAmount float64    `json:"paymentAmount"`
		}{
			CustomerID:    l.Metadata.CustomerID,
			OldDebt:       float64(l.Metadata.OldDebt) / 100,
			NewDebt:       float64(l.Metadata.NewDebt) / 100,
			PaymentAmount: float64(l.Metadata.PaymentAmount) / 100,
		}
	}
	return json.Marshal(&struct {
		Alias
		Metadata interface{} `json:"metadata,omitempty"`
	}{
		Alias:    Alias(l),
		Metadata: meta,
	})
}
