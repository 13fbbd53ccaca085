package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusCompleted OrderStatus = "completed"
)

// CostBreakdown is the frozen pricing of an order. Discount and Tax are
// absolute amounts; Total = max(0, Subtotal - Discount + Tax).
type CostBreakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CostOverride lets the caller pin the discount or tax amount instead of
// the engine defaults (zero discount, tax from the settings rate).
type CostOverride struct {
	Discount *decimal.Decimal
	Tax      *decimal.Decimal
}

// OrderOptions are the caller-supplied parts of order finalization.
type OrderOptions struct {
	Type    OrderType
	Payment *PaymentInfo
	Costs   CostOverride
}

// ComputeCosts prices a set of cart lines. The discount defaults to zero
// and the tax to taxRatePercent applied to the discounted subtotal.
func ComputeCosts(lines []CartLine, override CostOverride, taxRatePercent decimal.Decimal) CostBreakdown {
	subtotal := Subtotal(lines)

	discount := decimal.Zero
	if override.Discount != nil {
		discount = *override.Discount
	}

	taxable := maxZero(subtotal.Sub(discount))
	tax := taxable.Mul(taxRatePercent).Div(decimal.NewFromInt(100))
	if override.Tax != nil {
		tax = *override.Tax
	}

	return CostBreakdown{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    maxZero(subtotal.Sub(discount).Add(tax)),
	}
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Order is a finalized transaction record. Items, Costs and Timestamp are
// never modified after creation; only Status advances.
type Order struct {
	ID        string        `json:"id"`
	Items     []CartLine    `json:"items"`
	Costs     CostBreakdown `json:"costs"`
	Status    OrderStatus   `json:"status"`
	Type      OrderType     `json:"type"`
	Payment   *PaymentInfo  `json:"payment,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewOrder freezes the given cart lines and costs into a pending order.
// The lines are copied so later cart or catalog changes cannot reach in.
func NewOrder(id string, lines []CartLine, costs CostBreakdown, orderType OrderType, payment *PaymentInfo, now time.Time) Order {
	if orderType == "" {
		orderType = OrderTypeTakeaway
	}
	return Order{
		ID:        id,
		Items:     CloneLines(lines),
		Costs:     costs,
		Status:    StatusPending,
		Type:      orderType,
		Payment:   payment,
		Timestamp: now,
	}
}

var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusCompleted,
}

// CanTransitionTo reports whether the status machine allows moving to next.
// Only single forward steps are valid; a completed order is terminal.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	return next != "" && nextStatus[o.Status] == next
}

// TransitionTo advances the order one status step, rejecting everything else.
func (o *Order) TransitionTo(next OrderStatus) error {
	if !o.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	o.Status = next
	return nil
}
