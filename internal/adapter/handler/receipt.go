package handler

import (
	"fmt"
	"strings"

	"github.com/ffpos/ffpos/internal/core/domain"
)

const receiptWidth = 38

// RenderReceipt formats an order as the printed slip: store header, line
// items, cost block and payment block.
func RenderReceipt(s domain.Settings, o domain.Order) string {
	var b strings.Builder
	rule := strings.Repeat("-", receiptWidth)

	center(&b, s.Store.Name)
	center(&b, s.Store.AddressLine1)
	center(&b, "Phone: "+s.Store.Phone)
	b.WriteString(rule + "\n")

	row(&b, "Order #", o.ID)
	row(&b, "Date", o.Timestamp.Format("Jan 02, 2006"))
	row(&b, "Time", o.Timestamp.Format("15:04:05"))
	row(&b, "Type", string(o.Type))
	b.WriteString(rule + "\n")

	for _, line := range o.Items {
		b.WriteString(line.Item.Name + "\n")
		row(&b, fmt.Sprintf("  %s x %d", s.Currency.Format(line.Item.Price), line.Quantity),
			s.Currency.Format(line.LineTotal()))
	}
	b.WriteString(rule + "\n")

	row(&b, "Subtotal", s.Currency.Format(o.Costs.Subtotal))
	if o.Costs.Discount.IsPositive() {
		row(&b, "Discount", "-"+s.Currency.Format(o.Costs.Discount))
	}
	row(&b, "Tax", s.Currency.Format(o.Costs.Tax))
	row(&b, "TOTAL", s.Currency.Format(o.Costs.Total))

	if o.Payment != nil {
		b.WriteString(rule + "\n")
		row(&b, "Payment", string(o.Payment.Method))
		if o.Payment.Tendered != nil {
			row(&b, "Tendered", s.Currency.Format(*o.Payment.Tendered))
		}
		if o.Payment.Change != nil {
			row(&b, "Change", s.Currency.Format(*o.Payment.Change))
		}
		if o.Payment.Reference != "" {
			row(&b, "Reference", o.Payment.Reference)
		}
	}

	b.WriteString(rule + "\n")
	center(&b, "Thank you for your order!")
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	pad := receiptWidth - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(label + strings.Repeat(" ", pad) + value + "\n")
}

func center(b *strings.Builder, text string) {
	pad := (receiptWidth - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + text + "\n")
}
