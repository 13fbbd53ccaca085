package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ffpos/ffpos/internal/core/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testNow = time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)

func line(id, name, category, price string, qty int) domain.CartLine {
	return domain.CartLine{
		Item:     domain.MenuItem{ID: id, Name: name, Category: category, Price: d(price)},
		Quantity: qty,
	}
}

func testOrders() []domain.Order {
	return []domain.Order{
		{
			ID:        "3",
			Items:     []domain.CartLine{line("b1", "Burger", "Burgers", "10.00", 1)},
			Costs:     domain.CostBreakdown{Total: d("11.00")},
			Status:    domain.StatusPending,
			Timestamp: testNow.Add(-2 * time.Hour),
		},
		{
			ID:        "2",
			Items:     []domain.CartLine{line("f1", "Fries", "Sides", "4.00", 3)},
			Costs:     domain.CostBreakdown{Total: d("12.00")},
			Status:    domain.StatusCompleted,
			Timestamp: testNow.AddDate(0, 0, -1),
		},
		{
			ID: "1",
			Items: []domain.CartLine{
				line("b1", "Burger", "Burgers", "10.00", 2),
				line("f1", "Fries", "Sides", "4.00", 1),
			},
			Costs:     domain.CostBreakdown{Total: d("24.00")},
			Status:    domain.StatusCompleted,
			Timestamp: testNow.AddDate(0, 0, -6),
		},
	}
}

func TestSummary(t *testing.T) {
	stats := Summary(testOrders(), testNow)

	if !stats.TotalRevenue.Equal(d("47.00")) {
		t.Errorf("total revenue: expected 47.00, got %s", stats.TotalRevenue)
	}
	if !stats.TodayRevenue.Equal(d("11.00")) {
		t.Errorf("today revenue: expected 11.00, got %s", stats.TodayRevenue)
	}
	if stats.TotalOrders != 3 {
		t.Errorf("expected 3 orders, got %d", stats.TotalOrders)
	}
	if !stats.AverageOrderValue.Equal(d("15.67")) {
		t.Errorf("average: expected 15.67, got %s", stats.AverageOrderValue)
	}
}

func TestSummary_Empty(t *testing.T) {
	stats := Summary(nil, testNow)
	if !stats.AverageOrderValue.Equal(decimal.Zero) || stats.TotalOrders != 0 {
		t.Errorf("unexpected stats for empty ledger: %+v", stats)
	}
}

func TestDailySales(t *testing.T) {
	days := DailySales(testOrders(), 7, testNow)

	if len(days) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(days))
	}
	if !days[6].Date.Equal(testNow) {
		t.Errorf("last bucket must be today, got %v", days[6].Date)
	}
	if !days[6].Revenue.Equal(d("11.00")) || days[6].Orders != 1 {
		t.Errorf("today: expected 11.00/1, got %s/%d", days[6].Revenue, days[6].Orders)
	}
	if !days[5].Revenue.Equal(d("12.00")) {
		t.Errorf("yesterday: expected 12.00, got %s", days[5].Revenue)
	}
	if !days[0].Revenue.Equal(d("24.00")) {
		t.Errorf("six days ago: expected 24.00, got %s", days[0].Revenue)
	}
	if !days[3].Revenue.Equal(decimal.Zero) {
		t.Errorf("quiet day must be zero, got %s", days[3].Revenue)
	}
}

func TestCategorySales(t *testing.T) {
	sales := CategorySales(testOrders())

	if len(sales) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(sales))
	}
	// Burgers 3 x 10.00 = 30.00 beats Sides 4 x 4.00 = 16.00
	if sales[0].Category != "Burgers" || !sales[0].Revenue.Equal(d("30.00")) || sales[0].Quantity != 3 {
		t.Errorf("unexpected top category: %+v", sales[0])
	}
	if sales[1].Category != "Sides" || !sales[1].Revenue.Equal(d("16.00")) || sales[1].Quantity != 4 {
		t.Errorf("unexpected second category: %+v", sales[1])
	}
}

func TestTopSellers(t *testing.T) {
	top := TopSellers(testOrders(), 5)

	if len(top) != 2 {
		t.Fatalf("expected 2 items, got %d", len(top))
	}
	// Fries sold 4, Burger 3
	if top[0].Name != "Fries" || top[0].Quantity != 4 {
		t.Errorf("unexpected top seller: %+v", top[0])
	}
	if top[1].Name != "Burger" || !top[1].Revenue.Equal(d("30.00")) {
		t.Errorf("unexpected runner-up: %+v", top[1])
	}

	if got := TopSellers(testOrders(), 1); len(got) != 1 {
		t.Errorf("expected list cut to 1, got %d", len(got))
	}
}

func TestLowStock(t *testing.T) {
	menu := []domain.MenuItem{
		{ID: "1", Name: "Burger", Stock: 2},
		{ID: "2", Name: "Fries", Stock: 5},
		{ID: "3", Name: "Soda", Stock: 6},
	}
	low := LowStock(menu, 5)
	if len(low) != 2 {
		t.Fatalf("expected 2 low items, got %d", len(low))
	}
	if low[0].Name != "Burger" || low[1].Name != "Fries" {
		t.Errorf("unexpected low-stock items: %+v", low)
	}
}

func TestPending(t *testing.T) {
	pending := Pending(testOrders())
	if len(pending) != 1 || pending[0].ID != "3" {
		t.Errorf("unexpected pending orders: %+v", pending)
	}
}
