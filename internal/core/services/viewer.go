package services

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// Ensure ViewerService implements the interface.
var _ driving.ViewerService = (*ViewerService)(nil)

// ViewerService orchestrates the document session and the view state.
// Every user intent arrives as a domain.Command through Apply; state
// changes are all-or-nothing per command.
type ViewerService struct {
	session  *Session
	view     domain.ViewState
	settings *driving.ViewerSettings
	matches  []domain.Match
}

// NewViewerService creates a viewer over the given collaborators.
// Settings may be nil, in which case built-in defaults apply.
func NewViewerService(loader driven.DocumentLoader, validator driven.FileValidator, settings *driving.ViewerSettings) *ViewerService {
	if settings == nil {
		settings = driving.DefaultViewerSettings()
	}
	return &ViewerService{
		session:  NewSession(loader, validator),
		view:     viewStateFromSettings(settings),
		settings: settings,
	}
}

func viewStateFromSettings(settings *driving.ViewerSettings) domain.ViewState {
	v := domain.NewViewState()
	if settings.DefaultFitMode.IsValid() {
		v.Mode = settings.DefaultFitMode
	}
	if settings.ZoomStep > 1.0 {
		v.ZoomStep = settings.ZoomStep
	}
	if settings.Margin >= 0 {
		v.Margin = settings.Margin
	}
	return v
}

// Open loads a document. The view state is reset to the configured
// defaults; the previous document, if any, is closed first.
func (v *ViewerService) Open(ctx context.Context, path string) error {
	if err := v.session.Open(ctx, path); err != nil {
		return err
	}

	viewport := v.view.Viewport // survives reopen so fit still works
	v.view = viewStateFromSettings(v.settings)
	v.view.Viewport = viewport
	v.matches = nil
	v.refit()
	return nil
}

// Reopen reloads the current document from disk, keeping the page
// index clamped to the new page count. Used by the change watcher. A
// failed reload leaves the current document open and usable.
func (v *ViewerService) Reopen(ctx context.Context) error {
	if err := v.session.Reload(ctx); err != nil {
		return err
	}
	v.matches = nil
	v.refit()
	logger.Debug("reloaded %s at page %d", v.session.Path(), v.session.CurrentPage())
	return nil
}

// Close releases the open document. Idempotent.
func (v *ViewerService) Close() error {
	v.session.Close()
	v.matches = nil
	return nil
}

// Apply dispatches one command. A nil request with a nil error means
// the command was a boundary no-op and the display needs no refresh.
//
//nolint:gocyclo // single dispatch point over the whole command set
func (v *ViewerService) Apply(cmd domain.Command) (*domain.RenderRequest, error) {
	switch c := cmd.(type) {
	case domain.NextPage:
		return v.navigated(v.session.GoToNext()), nil
	case domain.PrevPage:
		return v.navigated(v.session.GoToPrevious()), nil
	case domain.FirstPage:
		return v.navigated(v.session.GoToFirst()), nil
	case domain.LastPage:
		return v.navigated(v.session.GoToLast()), nil

	case domain.GoToPage:
		if !v.session.IsOpen() {
			return nil, domain.ErrNoDocument
		}
		if !v.session.GoTo(c.Number) {
			return nil, fmt.Errorf("%w: %d (document has %d pages)",
				domain.ErrPageOutOfRange, c.Number, v.session.PageCount())
		}
		return v.navigated(true), nil

	case domain.ZoomIn:
		v.view.ZoomIn()
		return v.request(false), nil
	case domain.ZoomOut:
		v.view.ZoomOut()
		return v.request(false), nil
	case domain.ResetZoom:
		v.view.ResetZoom()
		return v.request(false), nil
	case domain.SetZoom:
		v.view.SetZoom(c.Factor)
		return v.request(false), nil

	case domain.SetFitMode:
		if err := v.view.SetFitMode(c.Mode); err != nil {
			return nil, err
		}
		// Unlike refit, this also covers actual size, which maps to
		// exactly 100%.
		v.view.ApplyFit(v.session.PageSize())
		return v.request(false), nil

	case domain.Rotate:
		v.view.Rotate(c.Degrees)
		// Rotation changes which page dimension is "width" for fit
		// purposes, so an active fit mode must recompute.
		v.refit()
		return v.request(false), nil

	case domain.SetViewport:
		v.view.Viewport = domain.Viewport{Width: c.Width, Height: c.Height}
		v.refit()
		return v.request(false), nil

	default:
		return nil, fmt.Errorf("unknown command %T", cmd)
	}
}

// navigated clears stale search highlights and produces the refresh
// request after a successful page change.
func (v *ViewerService) navigated(moved bool) *domain.RenderRequest {
	if !moved {
		return nil
	}
	v.matches = nil
	// A new page may have different native dimensions.
	v.refit()
	return v.request(true)
}

// refit recomputes the effective zoom when a fit mode is active.
func (v *ViewerService) refit() {
	if v.view.Mode.IsFitting() {
		v.view.ApplyFit(v.session.PageSize())
	}
}

// request builds the render request for the current state, or nil when
// no document is open.
func (v *ViewerService) request(autoScroll bool) *domain.RenderRequest {
	if !v.session.IsOpen() {
		return nil
	}
	placement := domain.PlacementTopLeft
	if v.view.Mode.IsFitting() && v.settings.Placement == domain.PlacementCentered {
		placement = domain.PlacementCentered
	}
	return &domain.RenderRequest{
		PageIndex:  v.session.PageIndex(),
		Zoom:       v.view.Zoom,
		Rotation:   v.view.Rotation,
		Placement:  placement,
		AutoScroll: autoScroll,
	}
}

// Render rasterises the current page. With nothing open it returns
// domain.ErrNoDocument; the UI treats that as "display nothing".
func (v *ViewerService) Render(ctx context.Context) (image.Image, *domain.RenderRequest, error) {
	req := v.request(false)
	if req == nil {
		return nil, nil, domain.ErrNoDocument
	}
	img, err := v.session.Document().RenderPage(ctx, req.PageIndex, req.Zoom, req.Rotation)
	if err != nil {
		return nil, nil, fmt.Errorf("render page %d: %w", req.PageIndex+1, err)
	}
	return img, req, nil
}

// PageText extracts the text layer of the current page.
func (v *ViewerService) PageText(ctx context.Context) (string, error) {
	if !v.session.IsOpen() {
		return "", domain.ErrNoDocument
	}
	return v.session.Document().PageText(ctx, v.session.PageIndex())
}

// Search finds the query on the current page only. An empty result is
// "not found", not an error.
func (v *ViewerService) Search(ctx context.Context, query string) ([]domain.Match, error) {
	if !v.session.IsOpen() {
		return nil, domain.ErrNoDocument
	}
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrNoQuery
	}

	matches, err := v.session.Document().SearchPage(
		ctx, v.session.PageIndex(), query, v.settings.CaseSensitiveSearch)
	if err != nil {
		return nil, fmt.Errorf("search page %d: %w", v.session.CurrentPage(), err)
	}
	v.matches = matches
	logger.Debug("search %q: %d matches on page %d", query, len(matches), v.session.CurrentPage())
	return matches, nil
}

// Matches returns the hits from the most recent search.
func (v *ViewerService) Matches() []domain.Match {
	return v.matches
}

// State returns a display snapshot of the viewer.
func (v *ViewerService) State() driving.ViewerState {
	return driving.ViewerState{
		Open:           v.session.IsOpen(),
		Path:           v.session.Path(),
		File:           v.session.File(),
		CurrentPage:    v.session.CurrentPage(),
		PageCount:      v.session.PageCount(),
		CanGoPrevious:  v.session.CanGoPrevious(),
		CanGoNext:      v.session.CanGoNext(),
		Zoom:           v.view.Zoom,
		ZoomPercentage: v.view.ZoomPercentage(),
		Rotation:       v.view.Rotation,
		FitMode:        v.view.Mode,
		MatchCount:     len(v.matches),
	}
}
