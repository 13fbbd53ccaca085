package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ffpos/ffpos/internal/core/domain"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Users   []UserConfig  `yaml:"users"`
}

type StorageConfig struct {
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type UserConfig struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// Default is the configuration used when no config file exists: data kept
// under ./data, and the stock admin/cashier demo accounts.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Dir: "data"},
		Users: []UserConfig{
			{ID: "1", Username: "admin", Password: "admin123", Role: "admin"},
			{ID: "2", Username: "cashier", Password: "cashier123", Role: "cashier"},
		},
	}
}

// Load reads the YAML config at path. A missing file yields the defaults;
// values present in the file override them.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = "data"
	}
	return cfg, nil
}

// Credentials converts the configured users into the auth credential list.
func (c *Config) Credentials() []domain.Credential {
	out := make([]domain.Credential, len(c.Users))
	for i, u := range c.Users {
		out[i] = domain.Credential{
			ID:       u.ID,
			Username: u.Username,
			Password: u.Password,
			Role:     domain.Role(u.Role),
		}
	}
	return out
}
