package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale is an immutable transaction line created at checkout. Product name
// and unit price are captured at sale time so archiving the product later
// does not change history. TotalAmount always equals UnitPrice * Quantity.
type Sale struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ProductID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"productId"`
	ProductName        string             `gorm:"size:255;not null" json:"productName"`
	Quantity           int                `gorm:"not null" json:"quantity"`
	UnitPrice          int64              `gorm:"not null" json:"-"` // cents
	TotalAmount        int64              `gorm:"not null" json:"-"` // cents
	EmployeeID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"employeeId"`
	EmployeeName       string             `gorm:"size:255;not null" json:"employeeName"`
	PaymentMethod      enum.PaymentMethod `gorm:"size:20;not null;index" json:"paymentMethod"`
	PrescriptionNumber string             `gorm:"size:100" json:"prescriptionNumber,omitempty"`
	CustomerID         *uuid.UUID         `gorm:"type:uuid;index" json:"customerId,omitempty"`
	CustomerName       string             `gorm:"size:255" json:"customerName,omitempty"`
	Notes              string             `gorm:"type:text" json:"notes,omitempty"`
	Timestamp          time.Time          `gorm:"not null;index" json:"timestamp"`
}

// BeforeCreate generates a UUID and stamps the sale time
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// MarshalJSON converts cent-denominated amounts to decimals for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		UnitPrice   float64 `json:"unitPrice"`
		TotalAmount float64 `json:"totalAmount"`
	}{
		Alias:       Alias(s),
		UnitPrice:   float64(s.UnitPrice) / 100,
		TotalAmount: float64(s.TotalAmount) / 100,
	})
}
