package service

import (
	"errors"
	"io/fs"
	"sync"

	"go.uber.org/zap"

	"github.com/ffpos/ffpos/internal/core/domain"
	"github.com/ffpos/ffpos/internal/port"
)

// SettingsService owns the store configuration record. Updates merge into
// the current record and are persisted best-effort.
type SettingsService struct {
	mu      sync.Mutex
	repo    port.StateRepository
	logger  *zap.Logger
	current domain.Settings
}

func NewSettingsService(repo port.StateRepository, logger *zap.Logger) *SettingsService {
	s := &SettingsService{repo: repo, logger: logger}

	cur, err := repo.LoadSettings()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("settings record unreadable, using defaults", zap.Error(err))
		}
		cur = domain.DefaultSettings()
	}
	s.current = cur
	return s
}

// Current returns the live settings record.
func (s *SettingsService) Current() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update merges a partial update into the record and returns the result.
func (s *SettingsService) Update(patch domain.SettingsPatch) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.Apply(&s.current)
	if err := s.repo.SaveSettings(s.current); err != nil {
		s.logger.Warn("persist settings failed", zap.Error(err))
	}
	return s.current
}
