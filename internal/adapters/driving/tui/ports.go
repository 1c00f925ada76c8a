// Package tui provides the interactive terminal viewer for Folio.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// Ports aggregates the services required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Viewer drives the document session and view state.
	Viewer driving.ViewerService

	// Settings manages viewer preferences. Optional; defaults apply
	// when nil.
	Settings driving.SettingsService

	// Watcher reports on-disk changes to the open file for auto
	// reload. Optional; reload is disabled when nil.
	Watcher driven.ChangeWatcher
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(viewer driving.ViewerService, settings driving.SettingsService, watcher driven.ChangeWatcher) *Ports {
	return &Ports{
		Viewer:   viewer,
		Settings: settings,
		Watcher:  watcher,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Viewer == nil {
		return ErrMissingViewerService
	}
	return nil
}
