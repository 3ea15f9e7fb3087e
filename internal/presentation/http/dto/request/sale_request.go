package request

// CheckoutItemRequest is one cart line in a checkout payload
type CheckoutItemRequest struct {
	ProductID          string `json:"productId" binding:"required,uuid"`
	Quantity           int    `json:"quantity" binding:"required,min=1"`
	PrescriptionNumber string `json:"prescriptionNumber"`
}

// CheckoutRequest represents the checkout request payload
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string                `json:"paymentMethod" binding:"required"`
	CustomerID    *string               `json:"customerId" binding:"omitempty,uuid"`
	Notes         string                `json:"notes"`
}
