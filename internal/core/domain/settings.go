package domain

import "github.com/shopspring/decimal"

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyAED Currency = "AED"
)

// Format renders an amount in the currency, derived purely from the code.
func (c Currency) Format(amount decimal.Decimal) string {
	symbol, places := "$", int32(2)
	switch c {
	case CurrencyEUR:
		symbol = "€"
	case CurrencyGBP:
		symbol = "£"
	case CurrencyJPY:
		symbol, places = "¥", 0
	case CurrencyAED:
		symbol = "AED "
	}
	return symbol + amount.StringFixed(places)
}

type StoreInfo struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	Phone        string `json:"phone"`
}

// Settings is the single mutable store configuration record.
type Settings struct {
	Store             StoreInfo       `json:"store"`
	Currency          Currency        `json:"currency"`
	TaxRatePercent    decimal.Decimal `json:"taxRatePercent"`
	DiscountPercent   decimal.Decimal `json:"discountPercent"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// DefaultSettings is the record used until the operator saves their own.
func DefaultSettings() Settings {
	return Settings{
		Store: StoreInfo{
			Name:         "FastFood POS",
			AddressLine1: "123 Restaurant Street",
			Phone:        "(555) 123-4567",
		},
		Currency:          CurrencyUSD,
		TaxRatePercent:    decimal.Zero,
		DiscountPercent:   decimal.Zero,
		LowStockThreshold: 5,
	}
}

type StoreInfoPatch struct {
	Name         *string
	AddressLine1 *string
	Phone        *string
}

// SettingsPatch is a partial settings update. Top-level fields merge
// shallowly; the store sub-record merges field by field.
type SettingsPatch struct {
	Store             *StoreInfoPatch
	Currency          *Currency
	TaxRatePercent    *decimal.Decimal
	DiscountPercent   *decimal.Decimal
	LowStockThreshold *int
}

// Apply merges the patch into the settings record.
func (p SettingsPatch) Apply(s *Settings) {
	if p.Store != nil {
		if p.Store.Name != nil {
			s.Store.Name = *p.Store.Name
		}
		if p.Store.AddressLine1 != nil {
			s.Store.AddressLine1 = *p.Store.AddressLine1
		}
		if p.Store.Phone != nil {
			s.Store.Phone = *p.Store.Phone
		}
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.TaxRatePercent != nil {
		s.TaxRatePercent = *p.TaxRatePercent
	}
	if p.DiscountPercent != nil {
		s.DiscountPercent = *p.DiscountPercent
	}
	if p.LowStockThreshold != nil {
		s.LowStockThreshold = *p.LowStockThreshold
	}
}
