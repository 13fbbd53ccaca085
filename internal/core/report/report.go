// Package report derives read-only sales views from the orders ledger and
// the menu catalog. Nothing here holds state or mutates its inputs.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ffpos/ffpos/internal/core/domain"
)

// SummaryStats are the headline numbers of the reports screen.
type SummaryStats struct {
	TotalRevenue      decimal.Decimal
	TodayRevenue      decimal.Decimal
	TotalOrders       int
	AverageOrderValue decimal.Decimal
}

// Summary computes the all-time and today totals over the ledger.
func Summary(orders []domain.Order, now time.Time) SummaryStats {
	stats := SummaryStats{
		TotalRevenue: decimal.Zero,
		TodayRevenue: decimal.Zero,
		TotalOrders:  len(orders),
	}
	for _, o := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Costs.Total)
		if sameDay(o.Timestamp, now) {
			stats.TodayRevenue = stats.TodayRevenue.Add(o.Costs.Total)
		}
	}
	stats.AverageOrderValue = decimal.Zero
	if len(orders) > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}
	return stats
}

// DaySales is one day's revenue and order count.
type DaySales struct {
	Date    time.Time
	Revenue decimal.Decimal
	Orders  int
}

// DailySales buckets revenue per calendar day for the last days days,
// oldest first, today last.
func DailySales(orders []domain.Order, days int, now time.Time) []DaySales {
	out := make([]DaySales, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		entry := DaySales{Date: day, Revenue: decimal.Zero}
		for _, o := range orders {
			if sameDay(o.Timestamp, day) {
				entry.Revenue = entry.Revenue.Add(o.Costs.Total)
				entry.Orders++
			}
		}
		out = append(out, entry)
	}
	return out
}

// CategorySale aggregates the sold quantity and revenue of one category.
type CategorySale struct {
	Category string
	Revenue  decimal.Decimal
	Quantity int
}

// CategorySales aggregates order lines by menu category, highest revenue
// first. Revenue is the pre-discount line total, as sold.
func CategorySales(orders []domain.Order) []CategorySale {
	byCategory := make(map[string]*CategorySale)
	for _, o := range orders {
		for _, line := range o.Items {
			c, ok := byCategory[line.Item.Category]
			if !ok {
				c = &CategorySale{Category: line.Item.Category, Revenue: decimal.Zero}
				byCategory[line.Item.Category] = c
			}
			c.Revenue = c.Revenue.Add(line.LineTotal())
			c.Quantity += line.Quantity
		}
	}

	out := make([]CategorySale, 0, len(byCategory))
	for _, c := range byCategory {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Category < out[j].Category
		}
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

// ItemSale aggregates the sold quantity and revenue of one menu item.
type ItemSale struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// TopSellers returns the n best-selling items by quantity.
func TopSellers(orders []domain.Order, n int) []ItemSale {
	byItem := make(map[string]*ItemSale)
	for _, o := range orders {
		for _, line := range o.Items {
			s, ok := byItem[line.Item.ID]
			if !ok {
				s = &ItemSale{Name: line.Item.Name, Revenue: decimal.Zero}
				byItem[line.Item.ID] = s
			}
			s.Quantity += line.Quantity
			s.Revenue = s.Revenue.Add(line.LineTotal())
		}
	}

	out := make([]ItemSale, 0, len(byItem))
	for _, s := range byItem {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity == out[j].Quantity {
			return out[i].Name < out[j].Name
		}
		return out[i].Quantity > out[j].Quantity
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// LowStock lists catalog items at or below the restock threshold.
func LowStock(menu []domain.MenuItem, threshold int) []domain.MenuItem {
	var out []domain.MenuItem
	for _, item := range menu {
		if item.Stock <= threshold {
			out = append(out, item)
		}
	}
	return out
}

// Pending lists ledger orders still waiting to be prepared.
func Pending(orders []domain.Order) []domain.Order {
	var out []domain.Order
	for _, o := range orders {
		if o.Status == domain.StatusPending {
			out = append(out, o)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
