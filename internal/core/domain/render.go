package domain

// Placement is the policy for positioning the rendered page within the
// display surface.
type Placement string

// Available placements.
const (
	// PlacementCentered centres the page in the viewport. Used while a
	// fit mode is active.
	PlacementCentered Placement = "centered"

	// PlacementTopLeft anchors the page at the top-left corner.
	PlacementTopLeft Placement = "top-left"
)

// IsValid returns true if the placement is recognised.
func (p Placement) IsValid() bool {
	return p == PlacementCentered || p == PlacementTopLeft
}

// RenderRequest is the tuple needed to ask the rasteriser for a bitmap.
// It is derived from the session and view state on every refresh and is
// never stored.
type RenderRequest struct {
	// PageIndex is the zero-based page to render.
	PageIndex int

	// Zoom is the effective zoom factor after fit adjustment.
	Zoom float64

	// Rotation is the view rotation in degrees.
	Rotation int

	// Placement positions the bitmap on the display surface.
	Placement Placement

	// AutoScroll requests the cosmetic scroll-to-top transition after
	// a page change.
	AutoScroll bool
}
