package port

import "github.com/ffpos/ffpos/internal/core/domain"

// StateRepository persists the four keyed state records. Records are
// independent: a failed or corrupt record never affects the others, and a
// record that has never been written reports fs.ErrNotExist on load.
// There is no cross-record transactionality.
type StateRepository interface {
	// LoadMenu restores the menu catalog record.
	LoadMenu() ([]domain.MenuItem, error)

	// SaveMenu writes the menu catalog record.
	SaveMenu(items []domain.MenuItem) error

	// LoadCart restores the in-progress cart record.
	LoadCart() ([]domain.CartLine, error)

	// SaveCart writes the in-progress cart record.
	SaveCart(lines []domain.CartLine) error

	// LoadOrders restores the orders ledger, most recent first.
	LoadOrders() ([]domain.Order, error)

	// SaveOrders writes the orders ledger.
	SaveOrders(orders []domain.Order) error

	// LoadSettings restores the settings record, with absent fields
	// already filled from the defaults.
	LoadSettings() (domain.Settings, error)

	// SaveSettings writes the settings record.
	SaveSettings(s domain.Settings) error
}
