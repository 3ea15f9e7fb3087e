package enum

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentCard          PaymentMethod = "card"
	PaymentMobileBanking PaymentMethod = "mobile banking"
)

// Valid reports whether the payment method is a known value
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobileBanking:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}
