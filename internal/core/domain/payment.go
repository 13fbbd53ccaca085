package domain

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
)

// PaymentInfo is a tagged variant over PaymentMethod: Tendered and Change
// exist only for cash, Reference only for card and mobile.
type PaymentInfo struct {
	Method    PaymentMethod    `json:"method"`
	Tendered  *decimal.Decimal `json:"tendered,omitempty"`
	Change    *decimal.Decimal `json:"change,omitempty"`
	Reference string           `json:"reference,omitempty"`
}

// NewCashPayment records a cash payment, computing the change against the
// order total. Tender below the total is rejected.
func NewCashPayment(tendered, total decimal.Decimal) (PaymentInfo, error) {
	if tendered.LessThan(total) {
		return PaymentInfo{}, ErrInsufficientTender
	}
	change := tendered.Sub(total)
	return PaymentInfo{Method: PaymentCash, Tendered: &tendered, Change: &change}, nil
}

// NewCardPayment records a card payment with an optional transaction reference.
func NewCardPayment(reference string) PaymentInfo {
	return PaymentInfo{Method: PaymentCard, Reference: reference}
}

// NewMobilePayment records a mobile payment with an optional transaction reference.
func NewMobilePayment(reference string) PaymentInfo {
	return PaymentInfo{Method: PaymentMobile, Reference: reference}
}

// Validate enforces the per-variant field rules.
func (p PaymentInfo) Validate() error {
	switch p.Method {
	case PaymentCash:
		if p.Tendered == nil || p.Change == nil || p.Change.IsNegative() || p.Reference != "" {
			return ErrInvalidPayment
		}
	case PaymentCard, PaymentMobile:
		if p.Tendered != nil || p.Change != nil {
			return ErrInvalidPayment
		}
	default:
		return ErrInvalidPayment
	}
	return nil
}
