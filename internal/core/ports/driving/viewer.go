package driving

import (
	"context"
	"image"
	"time"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// ViewerService is the single entry point for every user intent: the
// UI opens and closes documents, applies commands, and reads back a
// state snapshot after each operation.
type ViewerService interface {
	// Open validates and loads the document at path. Any previously
	// open document is closed first. A failed open leaves the viewer
	// closed, never half-open.
	Open(ctx context.Context, path string) error

	// Reopen reloads the current document from disk, keeping the page
	// index clamped to the new page count. Used for auto reload when
	// the file changes.
	Reopen(ctx context.Context) error

	// Close releases the open document. Idempotent.
	Close() error

	// Apply dispatches one command against the session and view
	// state. It returns the render request for the resulting display
	// refresh, or nil when the command was a boundary no-op.
	Apply(cmd domain.Command) (*domain.RenderRequest, error)

	// Render rasterises the current page per the current state.
	// Returns domain.ErrNoDocument when nothing is open.
	Render(ctx context.Context) (image.Image, *domain.RenderRequest, error)

	// PageText extracts the text layer of the current page.
	PageText(ctx context.Context) (string, error)

	// Search finds the query on the CURRENT page only. Matches are
	// held until the next search, navigation away, or close.
	Search(ctx context.Context, query string) ([]domain.Match, error)

	// Matches returns the matches from the most recent search.
	Matches() []domain.Match

	// State returns a display snapshot of the viewer.
	State() ViewerState
}

// ViewerState is a read-only snapshot for UI display: page counters,
// zoom percentage, and the enabled/disabled flags for boundary-dependent
// actions. It is recomputed after every operation.
type ViewerState struct {
	// Open reports whether a document is loaded.
	Open bool

	// Path is the file path of the open document.
	Path string

	// File describes the file behind the document.
	File domain.FileInfo

	// CurrentPage is 1-indexed for display; 0 when closed.
	CurrentPage int

	// PageCount is the total number of pages; 0 when closed.
	PageCount int

	// CanGoPrevious is true iff open and not on the first page.
	CanGoPrevious bool

	// CanGoNext is true iff open and not on the last page.
	CanGoNext bool

	// Zoom is the effective zoom factor.
	Zoom float64

	// ZoomPercentage is the zoom formatted for display, e.g. "128%".
	ZoomPercentage string

	// Rotation is the view rotation in degrees, in [0, 360).
	Rotation int

	// FitMode is the active fit policy.
	FitMode domain.FitMode

	// MatchCount is the number of hits from the last search.
	MatchCount int
}

// DocumentInfo is the metadata bundle for the info command.
type DocumentInfo struct {
	// File describes the file on disk.
	File domain.FileInfo

	// PageCount is the total number of pages.
	PageCount int

	// FirstPage is the native size of page 1 in points.
	FirstPage domain.PageSize

	// Metadata is the document information dictionary.
	Metadata map[string]string

	// OpenedAt is when the document was inspected.
	OpenedAt time.Time
}
