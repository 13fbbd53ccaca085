package service

import (
	"errors"
	"io/fs"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ffpos/ffpos/internal/core/domain"
	"github.com/ffpos/ffpos/internal/port"
)

// POSService is the order engine. It exclusively owns the menu catalog,
// the in-progress cart and the finalized orders ledger, and is their only
// mutation surface. A single mutex stands in for the one-event-at-a-time
// execution model of the terminal it drives.
type POSService struct {
	mu       sync.Mutex
	repo     port.StateRepository
	settings *SettingsService
	logger   *zap.Logger
	now      func() time.Time

	menu    []domain.MenuItem
	cart    []domain.CartLine
	orders  []domain.Order
	receipt *domain.Order
}

// NewPOSService restores state from the repository. Each record degrades
// independently: a missing or unreadable menu falls back to the seed
// catalog, a missing or unreadable cart or ledger starts empty.
func NewPOSService(repo port.StateRepository, settings *SettingsService, logger *zap.Logger) *POSService {
	s := &POSService{
		repo:     repo,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}

	menu, err := repo.LoadMenu()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("menu record unreadable, seeding defaults", zap.Error(err))
		}
		menu = domain.DefaultMenu()
	}
	s.menu = menu

	cart, err := repo.LoadCart()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("cart record unreadable, starting empty", zap.Error(err))
		}
		cart = nil
	}
	s.cart = cart

	orders, err := repo.LoadOrders()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("orders record unreadable, starting empty", zap.Error(err))
		}
		orders = nil
	}
	s.orders = orders

	return s
}

// MenuItems returns a copy of the catalog.
func (s *POSService) MenuItems() []domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

// AddMenuItem adds a catalog entry, assigning it a fresh id.
func (s *POSService) AddMenuItem(item domain.MenuItem) domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	s.menu = append(s.menu, item)
	s.persistMenu()
	s.logger.Info("menu item added", zap.String("item_id", item.ID), zap.String("name", item.Name))
	return item
}

// UpdateMenuItem merges a partial edit into an existing item. The id is
// immutable.
func (s *POSService) UpdateMenuItem(id string, patch domain.MenuItemPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menu {
		if s.menu[i].ID == id {
			patch.Apply(&s.menu[i])
			s.persistMenu()
			return nil
		}
	}
	return domain.ErrItemNotFound
}

// DeleteMenuItem removes an item unconditionally. Historical orders hold
// their own snapshots and are unaffected.
func (s *POSService) DeleteMenuItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.menu[:0]
	for _, item := range s.menu {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.menu = kept
	s.persistMenu()
}

// Cart returns a copy of the in-progress cart.
func (s *POSService) Cart() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneLines(s.cart)
}

// AddToCart puts one unit of the item into the cart. An item with no
// stock, or a line already at the catalog stock, is refused and the cart
// is left unchanged.
func (s *POSService) AddToCart(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.findMenuItem(itemID)
	if !ok {
		return domain.ErrItemNotFound
	}
	if item.Stock <= 0 {
		return domain.ErrOutOfStock
	}

	for i := range s.cart {
		if s.cart[i].Item.ID == itemID {
			if s.cart[i].Quantity >= item.Stock {
				return domain.ErrStockLimitReached
			}
			s.cart[i].Quantity++
			s.persistCart()
			return nil
		}
	}

	s.cart = append(s.cart, domain.CartLine{Item: item, Quantity: 1})
	s.persistCart()
	return nil
}

// RemoveFromCart drops the line for itemID. Removing an absent line is a
// no-op.
func (s *POSService) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLine(itemID)
	s.persistCart()
}

// UpdateCartQuantity sets a line's quantity, clamped to the item's
// current catalog stock. A quantity of zero or less removes the line; an
// absent line is a no-op.
func (s *POSService) UpdateCartQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLine(itemID)
		s.persistCart()
		return
	}

	for i := range s.cart {
		if s.cart[i].Item.ID == itemID {
			limit := s.cart[i].Item.Stock
			if item, ok := s.findMenuItem(itemID); ok {
				limit = item.Stock
			}
			if quantity > limit {
				quantity = limit
			}
			s.cart[i].Quantity = quantity
			s.persistCart()
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *POSService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persistCart()
}

// CreateOrder finalizes the cart: it prices the lines, debits catalog
// stock, prepends the new order to the ledger, clears the cart and makes
// the order the current receipt — all under one lock so no partial state
// is ever observable. Tax and discount defaults come from the settings
// record read here, not cached earlier. Stock is not re-validated at this
// point; it was checked when the cart was built.
func (s *POSService) CreateOrder(opts domain.OrderOptions) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}
	if opts.Payment != nil {
		if err := opts.Payment.Validate(); err != nil {
			return domain.Order{}, err
		}
	}

	cfg := s.settings.Current()
	costs := domain.ComputeCosts(s.cart, opts.Costs, cfg.TaxRatePercent)

	now := s.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	order := domain.NewOrder(id, s.cart, costs, opts.Type, opts.Payment, now)

	for _, line := range s.cart {
		for i := range s.menu {
			if s.menu[i].ID == line.Item.ID {
				s.menu[i].Stock -= line.Quantity
			}
		}
	}

	s.orders = append([]domain.Order{order}, s.orders...)
	s.cart = nil
	s.receipt = &order

	s.persistMenu()
	s.persistCart()
	s.persistOrders()

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.Int("lines", len(order.Items)),
		zap.String("total", order.Costs.Total.String()),
	)
	return order, nil
}

// Orders returns a copy of the ledger, most recent first.
func (s *POSService) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// UpdateOrderStatus advances an order one status step. Transitions that
// skip a step or move backwards are rejected.
func (s *POSService) UpdateOrderStatus(orderID string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			if err := s.orders[i].TransitionTo(status); err != nil {
				return err
			}
			s.persistOrders()
			s.logger.Info("order status advanced",
				zap.String("order_id", orderID),
				zap.String("status", string(status)),
			)
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

// CurrentReceipt returns the order shown on the receipt screen, or nil.
func (s *POSService) CurrentReceipt() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.receipt == nil {
		return nil
	}
	o := *s.receipt
	o.Items = domain.CloneLines(s.receipt.Items)
	return &o
}

// SetCurrentReceipt replaces the displayed receipt. Passing nil clears it.
func (s *POSService) SetCurrentReceipt(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipt = o
}

func (s *POSService) findMenuItem(id string) (domain.MenuItem, bool) {
	for _, item := range s.menu {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func (s *POSService) removeLine(itemID string) {
	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.Item.ID != itemID {
			kept = append(kept, line)
		}
	}
	s.cart = kept
}

// Persistence is best-effort: failures go to the log, never to the caller.

func (s *POSService) persistMenu() {
	if err := s.repo.SaveMenu(s.menu); err != nil {
		s.logger.Warn("persist menu failed", zap.Error(err))
	}
}

func (s *POSService) persistCart() {
	if err := s.repo.SaveCart(s.cart); err != nil {
		s.logger.Warn("persist cart failed", zap.Error(err))
	}
}

func (s *POSService) persistOrders() {
	if err := s.repo.SaveOrders(s.orders); err != nil {
		s.logger.Warn("persist orders failed", zap.Error(err))
	}
}
