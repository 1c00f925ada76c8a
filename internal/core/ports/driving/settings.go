package driving

import "github.com/folio-labs/folio-cli/internal/core/domain"

// SettingsService manages viewer preferences.
type SettingsService interface {
	// Get returns the current settings, with defaults filled in for
	// missing or invalid stored values.
	Get() (*ViewerSettings, error)

	// Save validates and persists the settings.
	Save(settings *ViewerSettings) error
}

// ViewerSettings are the persisted preferences. They seed the view
// state at document-open time; per-session state is never written back.
type ViewerSettings struct {
	// DefaultFitMode is the fit policy applied when a document opens.
	DefaultFitMode domain.FitMode

	// ZoomStep is the ZoomIn/ZoomOut multiplier.
	ZoomStep float64

	// Margin is the fit-computation margin per side, in pixels.
	Margin int

	// Placement positions pages on the display surface.
	Placement domain.Placement

	// CaseSensitiveSearch controls text search matching.
	CaseSensitiveSearch bool

	// WatchFiles enables reloading when the open file changes on disk.
	WatchFiles bool
}

// DefaultViewerSettings returns the built-in defaults.
func DefaultViewerSettings() *ViewerSettings {
	return &ViewerSettings{
		DefaultFitMode:      domain.FitPage,
		ZoomStep:            domain.DefaultZoomStep,
		Margin:              domain.DefaultMargin,
		Placement:           domain.PlacementCentered,
		CaseSensitiveSearch: false,
		WatchFiles:          true,
	}
}
