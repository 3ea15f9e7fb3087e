package request

// CreateDepositRequest represents the deposit submission payload.
// Amounts are decimals; Date defaults to today when omitted.
type CreateDepositRequest struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	CashRevenue     float64 `json:"cashRevenue" binding:"min=0"`
	AmountSubmitted float64 `json:"amountSubmitted" binding:"min=0"`
	Notes           string  `json:"notes"`
}
