package domain

import (
	"fmt"
	"math"
)

// Zoom bounds and defaults. All stored zoom factors stay inside
// [MinZoom, MaxZoom]; out-of-range requests are clamped, never rejected.
const (
	MinZoom = 0.1
	MaxZoom = 5.0

	// DefaultZoomStep is the multiplier applied by ZoomIn/ZoomOut.
	DefaultZoomStep = 1.2

	// DefaultMargin is the whitespace kept on each side of the page
	// during fit computations, in device pixels.
	DefaultMargin = 20
)

// ViewState holds the presentation state for the open document: zoom,
// rotation, fit mode, and the last-known viewport. It persists across
// page navigation and is reset when a new document is opened.
type ViewState struct {
	// Zoom is the current zoom factor, always within [MinZoom, MaxZoom].
	Zoom float64

	// Rotation is the view rotation in degrees, always in [0, 360)
	// and a multiple of 90 in normal operation.
	Rotation int

	// Mode is the active fit mode.
	Mode FitMode

	// Viewport is the last-known display area.
	Viewport Viewport

	// ZoomStep is the ZoomIn/ZoomOut multiplier.
	ZoomStep float64

	// Margin is the fit-computation margin per side, in pixels.
	Margin int
}

// NewViewState returns the default view state: 100% zoom, no rotation,
// fit-page mode. The original viewer enters fit-page on every open.
func NewViewState() ViewState {
	return ViewState{
		Zoom:     1.0,
		Rotation: 0,
		Mode:     FitPage,
		ZoomStep: DefaultZoomStep,
		Margin:   DefaultMargin,
	}
}

// ClampZoom forces a zoom factor into [MinZoom, MaxZoom].
func ClampZoom(zoom float64) float64 {
	if zoom < MinZoom || math.IsNaN(zoom) {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// SetZoom stores the factor, clamped to the legal range.
func (v *ViewState) SetZoom(factor float64) {
	v.Zoom = ClampZoom(factor)
}

// ZoomIn multiplies the zoom by the configured step, then clamps.
func (v *ViewState) ZoomIn() {
	v.Zoom = ClampZoom(v.Zoom * v.step())
}

// ZoomOut divides the zoom by the configured step, then clamps.
// Repeated in/out at the bounds is not exactly invertible; the clamp
// wins over symmetry.
func (v *ViewState) ZoomOut() {
	v.Zoom = ClampZoom(v.Zoom / v.step())
}

// ResetZoom returns to exactly 100% and leaves fit mode as actual size,
// so a later resize does not immediately override the reset.
func (v *ViewState) ResetZoom() {
	v.Zoom = 1.0
	v.Mode = FitActualSize
}

// SetFitMode stores the mode. An unrecognised mode is rejected and the
// state is left unchanged.
func (v *ViewState) SetFitMode(mode FitMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFitMode, mode)
	}
	v.Mode = mode
	return nil
}

// Rotate adds degrees to the current rotation, normalised to [0, 360).
// Callers should pass multiples of 90; other values are accepted
// arithmetically but have no defined visual meaning.
func (v *ViewState) Rotate(degrees int) {
	v.Rotation = NormalizeRotation(v.Rotation + degrees)
}

// ApplyFit recomputes the zoom from the fit mode and the given page
// geometry. Unavailable geometry leaves the zoom unchanged: fit is a
// derived-value refresh, never a failure surfaced to the caller.
func (v *ViewState) ApplyFit(page PageSize) {
	v.Zoom = FitZoom(page, v.Viewport, v.Margin, v.Rotation, v.Mode, v.Zoom)
}

// ZoomPercentage formats the zoom for display, e.g. "128%".
func (v *ViewState) ZoomPercentage() string {
	return fmt.Sprintf("%d%%", int(math.Round(v.Zoom*100)))
}

func (v *ViewState) step() float64 {
	if v.ZoomStep <= 1.0 {
		return DefaultZoomStep
	}
	return v.ZoomStep
}

// FitZoom derives a zoom factor from page geometry, viewport, margin,
// rotation, and fit mode. It is a pure function:
//
//  1. Page width/height are swapped at 90/270 degrees.
//  2. The available area is the viewport minus the margin on each side.
//  3. Width fits availW/pageW, height fits availH/pageH, page fits the
//     tighter of the two, actual size is 1.0.
//  4. The result is clamped to [MinZoom, MaxZoom].
//
// A degenerate viewport yields the minimum zoom. Missing page geometry
// yields prior, the caller's current zoom.
func FitZoom(page PageSize, viewport Viewport, margin, rotation int, mode FitMode, prior float64) float64 {
	if mode == FitActualSize {
		return 1.0
	}
	if !mode.IsFitting() {
		return ClampZoom(prior)
	}
	if page.IsZero() {
		return ClampZoom(prior)
	}

	oriented := page.Oriented(rotation)
	availW := float64(viewport.Width - 2*margin)
	availH := float64(viewport.Height - 2*margin)
	if availW <= 0 || availH <= 0 {
		return MinZoom
	}

	switch mode {
	case FitWidth:
		return ClampZoom(availW / oriented.Width)
	case FitHeight:
		return ClampZoom(availH / oriented.Height)
	case FitPage:
		return ClampZoom(math.Min(availW/oriented.Width, availH/oriented.Height))
	default:
		return ClampZoom(prior)
	}
}
