package domain

// PageSize is the native size of a page in PDF points (1/72 inch).
type PageSize struct {
	// Width is the page width in points.
	Width float64

	// Height is the page height in points.
	Height float64
}

// IsZero returns true when no usable geometry is present.
func (p PageSize) IsZero() bool {
	return p.Width <= 0 || p.Height <= 0
}

// Oriented returns the size with width and height swapped when the
// rotation turns a portrait page into landscape orientation (90/270).
func (p PageSize) Oriented(rotation int) PageSize {
	if NormalizeRotation(rotation) == 90 || NormalizeRotation(rotation) == 270 {
		return PageSize{Width: p.Height, Height: p.Width}
	}
	return p
}

// Viewport is the size of the display area in device pixels.
type Viewport struct {
	// Width is the viewport width in pixels.
	Width int

	// Height is the viewport height in pixels.
	Height int
}

// IsZero returns true when the viewport has no usable area.
func (v Viewport) IsZero() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Rect is an axis-aligned bounding box in page coordinates (points).
type Rect struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rect.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// NormalizeRotation reduces an angle in degrees to [0, 360).
// Negative input is handled so rotating backwards works.
func NormalizeRotation(degrees int) int {
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	return d
}
