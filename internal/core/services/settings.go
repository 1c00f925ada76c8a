package services

import (
	"fmt"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyFitMode       = "view.fit_mode"
	keyZoomStep      = "view.zoom_step"
	keyMargin        = "view.margin"
	keyPlacement     = "view.placement"
	keyCaseSensitive = "search.case_sensitive"
	keyWatchFiles    = "files.watch"
)

// SettingsService manages viewer preferences.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid stored values
// fall back to the defaults.
func (s *SettingsService) Get() (*driving.ViewerSettings, error) {
	defaults := driving.DefaultViewerSettings()

	settings := &driving.ViewerSettings{
		DefaultFitMode:      s.getFitMode(defaults.DefaultFitMode),
		ZoomStep:            s.getZoomStep(defaults.ZoomStep),
		Margin:              s.getMargin(defaults.Margin),
		Placement:           s.getPlacement(defaults.Placement),
		CaseSensitiveSearch: s.getBool(keyCaseSensitive, defaults.CaseSensitiveSearch),
		WatchFiles:          s.getBool(keyWatchFiles, defaults.WatchFiles),
	}

	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *driving.ViewerSettings) error {
	if !settings.DefaultFitMode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidFitMode, settings.DefaultFitMode)
	}
	if settings.ZoomStep <= 1.0 {
		return fmt.Errorf("zoom step must be greater than 1.0, got %v", settings.ZoomStep)
	}
	if settings.Margin < 0 {
		return fmt.Errorf("margin must be non-negative, got %d", settings.Margin)
	}
	if !settings.Placement.IsValid() {
		return fmt.Errorf("invalid placement: %q", settings.Placement)
	}

	if err := s.configStore.Set(keyFitMode, settings.DefaultFitMode.String()); err != nil {
		return fmt.Errorf("save fit mode: %w", err)
	}
	if err := s.configStore.Set(keyZoomStep, settings.ZoomStep); err != nil {
		return fmt.Errorf("save zoom step: %w", err)
	}
	if err := s.configStore.Set(keyMargin, settings.Margin); err != nil {
		return fmt.Errorf("save margin: %w", err)
	}
	if err := s.configStore.Set(keyPlacement, string(settings.Placement)); err != nil {
		return fmt.Errorf("save placement: %w", err)
	}
	if err := s.configStore.Set(keyCaseSensitive, settings.CaseSensitiveSearch); err != nil {
		return fmt.Errorf("save case sensitivity: %w", err)
	}
	if err := s.configStore.Set(keyWatchFiles, settings.WatchFiles); err != nil {
		return fmt.Errorf("save watch flag: %w", err)
	}

	return nil
}

func (s *SettingsService) getFitMode(fallback domain.FitMode) domain.FitMode {
	mode := domain.FitMode(s.configStore.GetString(keyFitMode))
	if !mode.IsValid() {
		return fallback
	}
	return mode
}

func (s *SettingsService) getZoomStep(fallback float64) float64 {
	step := s.configStore.GetFloat(keyZoomStep)
	if step <= 1.0 {
		return fallback
	}
	return step
}

func (s *SettingsService) getMargin(fallback int) int {
	if _, ok := s.configStore.Get(keyMargin); !ok {
		return fallback
	}
	margin := s.configStore.GetInt(keyMargin)
	if margin < 0 {
		return fallback
	}
	return margin
}

func (s *SettingsService) getPlacement(fallback domain.Placement) domain.Placement {
	placement := domain.Placement(s.configStore.GetString(keyPlacement))
	if !placement.IsValid() {
		return fallback
	}
	return placement
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}
