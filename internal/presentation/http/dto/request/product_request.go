package request

// CreateProductRequest represents the create product request payload.
// Prices are decimal amounts and converted to cents at the boundary.
type CreateProductRequest struct {
	Name                 string  `json:"name" binding:"required"`
	GenericName          string  `json:"genericName"`
	Manufacturer         string  `json:"manufacturer"`
	Category             string  `json:"category"`
	DosageForm           string  `json:"dosageForm"`
	Strength             string  `json:"strength"`
	Barcode              string  `json:"barcode"`
	SKU                  string  `json:"sku" binding:"required"`
	UnitPrice            float64 `json:"unitPrice" binding:"min=0"`
	CostPrice            float64 `json:"costPrice" binding:"min=0"`
	WholesalePrice       float64 `json:"wholesalePrice" binding:"min=0"`
	Stock                int     `json:"stock" binding:"min=0"`
	ReorderLevel         int     `json:"reorderLevel" binding:"min=0"`
	ExpiryDate           string  `json:"expiryDate"` // YYYY-MM-DD
	BatchNumber          string  `json:"batchNumber"`
	Location             string  `json:"location"`
	RequiresPrescription bool    `json:"requiresPrescription"`
}

// UpdateProductRequest represents the update product request payload.
// Omitted fields are left unchanged.
type UpdateProductRequest struct {
	Name                 *string  `json:"name"`
	GenericName          *string  `json:"genericName"`
	Manufacturer         *string  `json:"manufacturer"`
	Category             *string  `json:"category"`
	DosageForm           *string  `json:"dosageForm"`
	Strength             *string  `json:"strength"`
	Barcode              *string  `json:"barcode"`
	UnitPrice            *float64 `json:"unitPrice" binding:"omitempty,min=0"`
	CostPrice            *float64 `json:"costPrice" binding:"omitempty,min=0"`
	WholesalePrice       *float64 `json:"wholesalePrice" binding:"omitempty,min=0"`
	ReorderLevel         *int     `json:"reorderLevel" binding:"omitempty,min=0"`
	ExpiryDate           *string  `json:"expiryDate"` // YYYY-MM-DD
	BatchNumber          *string  `json:"batchNumber"`
	Location             *string  `json:"location"`
	RequiresPrescription *bool    `json:"requiresPrescription"`
}

// AdjustStockRequest represents a stock adjustment payload
type AdjustStockRequest struct {
	Stock  *int   `json:"stock" binding:"required,min=0"`
	Reason string `json:"reason"`
}
