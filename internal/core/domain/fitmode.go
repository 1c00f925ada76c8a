package domain

const unknownDescription = "Unknown"

// FitMode defines how the zoom factor is derived from the viewport
// and page geometry.
type FitMode string

// Available fit modes.
const (
	// FitWidth scales the page so its width fills the viewport.
	FitWidth FitMode = "width"

	// FitHeight scales the page so its height fills the viewport.
	FitHeight FitMode = "height"

	// FitPage scales the page so it fits the viewport in both dimensions.
	FitPage FitMode = "page"

	// FitActualSize renders the page at 100% with no fit scaling.
	FitActualSize FitMode = "actual"
)

// IsValid returns true if the fit mode is recognised.
func (m FitMode) IsValid() bool {
	switch m {
	case FitWidth, FitHeight, FitPage, FitActualSize:
		return true
	default:
		return false
	}
}

// IsFitting returns true if the mode derives zoom from the viewport.
// FitActualSize is a fixed 100% and never triggers recomputation.
func (m FitMode) IsFitting() bool {
	return m == FitWidth || m == FitHeight || m == FitPage
}

// String returns the string representation.
func (m FitMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m FitMode) Description() string {
	switch m {
	case FitWidth:
		return "Fit Width"
	case FitHeight:
		return "Fit Height"
	case FitPage:
		return "Fit Page"
	case FitActualSize:
		return "Actual Size"
	default:
		return unknownDescription
	}
}
