package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wholesaler represents a supplier the pharmacy buys from, with a
// running balance owed to them (cents).
type Wholesaler struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	ContactPerson string    `gorm:"size:255" json:"contactPerson,omitempty"`
	Phone         string    `gorm:"size:50" json:"phone,omitempty"`
	Email         string    `gorm:"size:255" json:"email,omitempty"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`
	Balance       int64     `gorm:"not null;default:0" json:"-"` // cents
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new wholesaler
func (w *Wholesaler) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Wholesaler model
func (Wholesaler) TableName() string {
	return "wholesalers"
}

// MarshalJSON converts the cent-denominated balance to a decimal
func (w Wholesaler) MarshalJSON() ([]byte, error) {
	type Alias Wholesaler
	return json.Marshal(&struct {
		Alias
		Balance float64 `json:"balance"`
	}{
		Alias:   Alias(w),
		Balance: float64(w.Balance) / 100,
	})
}
