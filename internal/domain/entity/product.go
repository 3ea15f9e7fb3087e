package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product represents a catalog item in the pharmacy inventory.
// Prices are stored in cents; deletion is a soft archive so historical
// sales retain a valid reference.
type Product struct {
	ID                   uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name                 string             `gorm:"size:255;not null" json:"name"`
	GenericName          string             `gorm:"size:255" json:"genericName"`
	Manufacturer         string             `gorm:"size:255" json:"manufacturer"`
	Category             string             `gorm:"size:100;index" json:"category"`
	DosageForm           string             `gorm:"size:100" json:"dosageForm"`
	Strength             string             `gorm:"size:100" json:"strength"`
	Barcode              string             `gorm:"size:100;index" json:"barcode"`
	SKU                  string             `gorm:"size:100;unique;not null" json:"sku"`
	UnitPrice            int64              `gorm:"not null;default:0" json:"-"` // cents
	CostPrice            int64              `gorm:"not null;default:0" json:"-"` // cents
	WholesalePrice       int64              `gorm:"not null;default:0" json:"-"` // cents
	Stock                int                `gorm:"not null;default:0" json:"stock"`
	ReorderLevel         int                `gorm:"not null;default:0" json:"reorderLevel"`
	ExpiryDate           time.Time          `gorm:"type:date" json:"expiryDate"`
	BatchNumber          string             `gorm:"size:100" json:"batchNumber"`
	Location             string             `gorm:"size:100" json:"location"`
	RequiresPrescription bool               `gorm:"not null;default:false" json:"requiresPrescription"`
	Status               enum.ProductStatus `gorm:"size:20;not null;default:'active';index" json:"status"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether stock has reached the reorder threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.ReorderLevel
}

// IsExpiringWithin reports whether the product expires within d of now
// and has not already expired.
func (p *Product) IsExpiringWithin(now time.Time, d time.Duration) bool {
	return p.ExpiryDate.After(now) && !p.ExpiryDate.After(now.Add(d))
}

// MarshalJSON converts cent-denominated prices to decimals for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		UnitPrice      float64 `json:"unitPrice"`
		CostPrice      float64 `json:"costPrice"`
		WholesalePrice float64 `json:"wholesalePrice"`
	}{
		Alias:          Alias(p),
		UnitPrice:      float64(p.UnitPrice) / 100,
		CostPrice:      float64(p.CostPrice) / 100,
		WholesalePrice: float64(p.WholesalePrice) / 100,
	})
}
