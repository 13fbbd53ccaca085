package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ffpos/ffpos/internal/core/domain"
)

const (
	menuFile     = "menu.json"
	cartFile     = "cart.json"
	ordersFile   = "orders.json"
	settingsFile = "settings.json"
)

// FileStore keeps each state record in its own JSON file under dir.
// One file per record so a corrupt file cannot take the others down.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) LoadMenu() ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := f.read(menuFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FileStore) SaveMenu(items []domain.MenuItem) error {
	return f.write(menuFile, items)
}

func (f *FileStore) LoadCart() ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := f.read(cartFile, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (f *FileStore) SaveCart(lines []domain.CartLine) error {
	return f.write(cartFile, lines)
}

func (f *FileStore) LoadOrders() ([]domain.Order, error) {
	var orders []domain.Order
	if err := f.read(ordersFile, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (f *FileStore) SaveOrders(orders []domain.Order) error {
	return f.write(ordersFile, orders)
}

// LoadSettings decodes over the defaults, so fields missing from an older
// record keep their default values.
func (f *FileStore) LoadSettings() (domain.Settings, error) {
	s := domain.DefaultSettings()
	if err := f.read(settingsFile, &s); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

func (f *FileStore) SaveSettings(s domain.Settings) error {
	return f.write(settingsFile, s)
}

func (f *FileStore) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (f *FileStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(f.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
