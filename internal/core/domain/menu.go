package domain

import "github.com/shopspring/decimal"

// MenuItem is a sellable catalog entry. The ID is assigned when the item
// is created and never changes; Stock is debited only when an order is
// finalized.
type MenuItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Image    string          `json:"image,omitempty"`
}

// MenuItemPatch carries a partial admin edit. Nil fields are left as-is.
type MenuItemPatch struct {
	Name     *string
	Price    *decimal.Decimal
	Category *string
	Stock    *int
	Image    *string
}

// Apply merges the patch into the item. The id is immutable.
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Stock != nil {
		item.Stock = *p.Stock
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
}

// DefaultMenu returns the seed catalog used when no menu record exists yet.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: "1", Name: "Big Burger", Price: decimal.RequireFromString("12.99"), Category: "Burgers", Stock: 25},
		{ID: "2", Name: "Cheese Burger", Price: decimal.RequireFromString("10.99"), Category: "Burgers", Stock: 30},
		{ID: "3", Name: "Chicken Wings", Price: decimal.RequireFromString("8.99"), Category: "Chicken", Stock: 40},
		{ID: "4", Name: "French Fries", Price: decimal.RequireFromString("4.99"), Category: "Sides", Stock: 50},
		{ID: "5", Name: "Coca Cola", Price: decimal.RequireFromString("2.99"), Category: "Drinks", Stock: 60},
		{ID: "6", Name: "Chicken Sandwich", Price: decimal.RequireFromString("9.99"), Category: "Chicken", Stock: 20},
		{ID: "7", Name: "Fish Burger", Price: decimal.RequireFromString("11.99"), Category: "Burgers", Stock: 15},
		{ID: "8", Name: "Onion Rings", Price: decimal.RequireFromString("5.99"), Category: "Sides", Stock: 35},
	}
}
