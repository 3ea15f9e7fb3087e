package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer with a running debt balance.
// A positive DebtAmount means the customer owes the business; negative
// means the business owes the customer credit. The balance is mutated
// only through the audited debt-update operation.
type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Phone      string    `gorm:"size:50" json:"phone"`
	DebtAmount int64     `gorm:"not null;default:0" json:"-"` // cents
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// MarshalJSON converts the cent-denominated balance to a decimal
func (c Customer) MarshalJSON() ([]byte, error) {
	type Alias Customer
	return json.Marshal(&struct {
		Alias
		DebtAmount float64 `json:"debtAmount"`
	}{
		Alias:      Alias(c),
		DebtAmount: float64(c.DebtAmount) / 100,
	})
}
