package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ffpos/ffpos/internal/core/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return store
}

func TestLoad_MissingRecord(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.LoadMenu(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if _, err := store.LoadOrders(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMenuRoundTrip(t *testing.T) {
	store := newTestStore(t)

	menu := []domain.MenuItem{
		{ID: "1", Name: "Burger", Price: decimal.RequireFromString("10.99"), Category: "Burgers", Stock: 5},
	}
	if err := store.SaveMenu(menu); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.LoadMenu()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Burger" {
		t.Fatalf("unexpected menu: %+v", got)
	}
	if !got[0].Price.Equal(menu[0].Price) {
		t.Errorf("price lost precision: %s", got[0].Price)
	}
}

func TestOrdersRoundTrip(t *testing.T) {
	store := newTestStore(t)

	tendered := decimal.RequireFromString("25.00")
	change := decimal.RequireFromString("3.00")
	orders := []domain.Order{{
		ID: "1757000000000000000",
		Items: []domain.CartLine{{
			Item:     domain.MenuItem{ID: "1", Name: "Burger", Price: decimal.RequireFromString("10.00")},
			Quantity: 2,
		}},
		Costs: domain.CostBreakdown{
			Subtotal: decimal.RequireFromString("20.00"),
			Discount: decimal.Zero,
			Tax:      decimal.RequireFromString("2.00"),
			Total:    decimal.RequireFromString("22.00"),
		},
		Status:    domain.StatusPending,
		Type:      domain.OrderTypeTakeaway,
		Payment:   &domain.PaymentInfo{Method: domain.PaymentCash, Tendered: &tendered, Change: &change},
		Timestamp: time.Now().UTC(),
	}}
	if err := store.SaveOrders(orders); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.LoadOrders()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 order, got %d", len(got))
	}
	o := got[0]
	if !o.Costs.Total.Equal(orders[0].Costs.Total) {
		t.Errorf("total changed: %s", o.Costs.Total)
	}
	if o.Payment == nil || !o.Payment.Change.Equal(change) {
		t.Errorf("payment not restored: %+v", o.Payment)
	}
	if o.Items[0].Quantity != 2 {
		t.Errorf("line not restored: %+v", o.Items[0])
	}
}

func TestSettings_MissingFieldsKeepDefaults(t *testing.T) {
	store := newTestStore(t)

	// an older record without the threshold field
	partial := []byte(`{"currency": "EUR"}`)
	if err := os.WriteFile(filepath.Join(store.dir, settingsFile), partial, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Currency != domain.CurrencyEUR {
		t.Errorf("expected EUR, got %s", got.Currency)
	}
	if got.LowStockThreshold != 5 {
		t.Errorf("missing field must keep its default, got %d", got.LowStockThreshold)
	}
}

func TestLoad_CorruptRecord(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(filepath.Join(store.dir, cartFile), []byte("{oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.LoadCart(); err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a decode error, got %v", err)
	}

	// other records are untouched by the corruption
	if err := store.SaveMenu(domain.DefaultMenu()); err != nil {
		t.Fatalf("save menu: %v", err)
	}
	if _, err := store.LoadMenu(); err != nil {
		t.Errorf("menu record must load despite corrupt cart: %v", err)
	}
}
