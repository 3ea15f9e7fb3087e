package request

// CreateCustomerRequest represents the create customer request payload.
// InitialDebt is a decimal amount.
type CreateCustomerRequest struct {
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	InitialDebt float64 `json:"initialDebt" binding:"min=0"`
}

// UpdateDebtRequest represents a debt adjustment payload. Amounts are
// decimals; at least one must be positive.
type UpdateDebtRequest struct {
	PaymentAmount  float64 `json:"paymentAmount" binding:"min=0"`
	AdditionalDebt float64 `json:"additionalDebt" binding:"min=0"`
}
