package domain

import "github.com/shopspring/decimal"

// CartLine pairs a snapshot of a menu item with the selected quantity.
// The snapshot keeps a finalized order priced as sold even if the catalog
// changes afterwards.
type CartLine struct {
	Item     MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}

// LineTotal is the price of the line: item price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Subtotal sums the line totals of the given cart lines.
func Subtotal(lines []CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// CloneLines returns an independent copy of the given cart lines.
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
