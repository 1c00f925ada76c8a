package domain

// Command is a user intent dispatched to the viewer controller.
// Every UI affordance (key press, menu item, CLI flag) reduces to one
// of these values; the controller is the single entry point that
// applies them to the session and view state.
type Command interface {
	isCommand()
}

// Navigation commands.

// NextPage advances to the next page; a no-op on the last page.
type NextPage struct{}

// PrevPage steps back to the previous page; a no-op on the first page.
type PrevPage struct{}

// FirstPage jumps to page 1.
type FirstPage struct{}

// LastPage jumps to the final page.
type LastPage struct{}

// GoToPage jumps to an explicit 1-indexed page number.
type GoToPage struct {
	Number int
}

// Zoom commands.

// ZoomIn multiplies the zoom by the configured step.
type ZoomIn struct{}

// ZoomOut divides the zoom by the configured step.
type ZoomOut struct{}

// ResetZoom returns to 100% and actual-size mode.
type ResetZoom struct{}

// SetZoom stores an explicit zoom factor (clamped).
type SetZoom struct {
	Factor float64
}

// SetFitMode switches the fit policy and recomputes the zoom.
type SetFitMode struct {
	Mode FitMode
}

// Rotate turns the view by the given degrees (multiples of 90).
type Rotate struct {
	Degrees int
}

// SetViewport records a new display size; fit modes recompute.
type SetViewport struct {
	Width  int
	Height int
}

func (NextPage) isCommand()    {}
func (PrevPage) isCommand()    {}
func (FirstPage) isCommand()   {}
func (LastPage) isCommand()    {}
func (GoToPage) isCommand()    {}
func (ZoomIn) isCommand()      {}
func (ZoomOut) isCommand()     {}
func (ResetZoom) isCommand()   {}
func (SetZoom) isCommand()     {}
func (SetFitMode) isCommand()  {}
func (Rotate) isCommand()      {}
func (SetViewport) isCommand() {}
