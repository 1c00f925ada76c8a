// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"image"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewViewer is the document display view.
	ViewViewer ViewType = iota
	// ViewOpen is the file picker view.
	ViewOpen
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewViewer:
		return "viewer"
	case ViewOpen:
		return "open"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// FileChosen is sent when the file picker selects a document.
type FileChosen struct {
	Path string
}

// DocumentOpened signals that an open attempt finished.
type DocumentOpened struct {
	Path string
	Err  error
}

// PageRendered carries a rasterised page back to the viewer.
type PageRendered struct {
	Image   image.Image
	Request *domain.RenderRequest
	Err     error
}

// SearchCompleted carries search matches back to the viewer.
type SearchCompleted struct {
	Query   string
	Matches []domain.Match
	Err     error
}

// FileChanged signals that the open file was rewritten on disk.
type FileChanged struct{}

// DocumentReloaded signals that an auto reload finished.
type DocumentReloaded struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
