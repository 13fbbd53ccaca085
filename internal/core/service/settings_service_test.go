package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/ffpos/ffpos/internal/core/domain"
)

func TestSettingsService_DefaultsWhenMissing(t *testing.T) {
	repo := &mockStateRepo{}
	svc := NewSettingsService(repo, zap.NewNop())

	if svc.Current() != domain.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", svc.Current())
	}
}

func TestSettingsService_UpdateMergesAndPersists(t *testing.T) {
	repo := &mockStateRepo{}
	svc := NewSettingsService(repo, zap.NewNop())

	tax := d("8.5")
	got := svc.Update(domain.SettingsPatch{TaxRatePercent: &tax})

	if !got.TaxRatePercent.Equal(tax) {
		t.Errorf("tax rate not applied: %s", got.TaxRatePercent)
	}
	if got.Store.Name != "FastFood POS" {
		t.Errorf("untouched field changed: %s", got.Store.Name)
	}
	if repo.settings == nil || !repo.settings.TaxRatePercent.Equal(tax) {
		t.Error("updated settings not persisted")
	}
}

func TestSettingsService_RestoresPersisted(t *testing.T) {
	saved := domain.DefaultSettings()
	saved.Currency = domain.CurrencyGBP
	repo := &mockStateRepo{settings: &saved}

	svc := NewSettingsService(repo, zap.NewNop())
	if svc.Current().Currency != domain.CurrencyGBP {
		t.Errorf("expected GBP, got %s", svc.Current().Currency)
	}
}
