package request

// CreateWholesalerRequest represents the create wholesaler payload.
// Balance is a decimal amount the business owes the wholesaler.
type CreateWholesalerRequest struct {
	Name          string  `json:"name" binding:"required"`
	ContactPerson string  `json:"contactPerson"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email" binding:"omitempty,email"`
	Address       string  `json:"address"`
	Balance       float64 `json:"balance"`
}

// UpdateWholesalerRequest represents the update wholesaler payload.
// Omitted fields are left unchanged.
type UpdateWholesalerRequest struct {
	Name          *string  `json:"name"`
	ContactPerson *string  `json:"contactPerson"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	Address       *string  `json:"address"`
	Balance       *float64 `json:"balance"`
}
