package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/keymap"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/messages"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/views/open"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/views/viewer"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings shared by the views.
	keymap *keymap.KeyMap

	// viewerView is the document display view.
	viewerView *viewer.View

	// openView is the file picker view.
	openView *open.View

	// settings are the viewer preferences loaded at startup.
	settings *driving.ViewerSettings

	// initialPath is the document to open on startup, if any.
	initialPath string

	// currentView tracks which view is active.
	currentView messages.ViewType

	// watchCancel stops the active file watch, if any.
	watchCancel context.CancelFunc

	// watchTicks delivers change notifications for the open file.
	watchTicks <-chan struct{}

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application. With an empty path the file
// picker is shown first; otherwise the document is opened on startup.
func NewApp(ports *Ports, path string, settings *driving.ViewerSettings) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if settings == nil {
		settings = driving.DefaultViewerSettings()
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	viewerView := viewer.NewView(s, km, ports.Viewer)
	openView := open.NewView(s, km)

	currentView := messages.ViewOpen
	if path != "" {
		currentView = messages.ViewViewer
	}

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		viewerView:  viewerView,
		openView:    openView,
		settings:    settings,
		initialPath: path,
		currentView: currentView,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.viewerView.SetContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("folio"),
	}
	if a.initialPath != "" {
		cmds = append(cmds, a.openCmd(a.initialPath))
	} else {
		cmds = append(cmds, a.openView.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.openView.SetDimensions(msg.Width, msg.Height)
		// The viewer recomputes its viewport and may re-render.
		return a, a.viewerView.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewViewer:
			a.viewerView, cmd = a.viewerView.Update(msg)
			return a, cmd

		case messages.ViewOpen:
			a.openView, cmd = a.openView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Any key returns to the viewer.
			a.currentView = messages.ViewViewer
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewOpen {
			a.openView.SetAllowBack(a.ports.Viewer.State().Open)
			return a, a.openView.Init()
		}
		return a, nil

	case messages.FileChosen:
		a.currentView = messages.ViewViewer
		return a, a.openCmd(msg.Path)

	case messages.DocumentOpened:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.viewerView, cmd = a.viewerView.Update(msg)
		if msg.Err == nil {
			return a, tea.Batch(cmd, a.startWatch(msg.Path))
		}
		return a, cmd

	case messages.FileChanged:
		return a, tea.Batch(a.reloadCmd(), waitForChange(a.watchTicks))

	case messages.DocumentReloaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.viewerView, cmd = a.viewerView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.viewerView, cmd = a.viewerView.Update(msg)
		return a, cmd

	case messages.Quit:
		a.stopWatch()
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewViewer:
		a.viewerView, cmd = a.viewerView.Update(msg)
	case messages.ViewOpen:
		a.openView, cmd = a.openView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewViewer:
		return a.viewerView.View()
	case messages.ViewOpen:
		return a.openView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.viewerView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  ←/h, →/l    Previous / next page
  pgup/pgdn   Previous / next page
  ↑/k, ↓/j    Scroll within the page (turns the page at the edges)
  g, G        First / last page
  :           Go to page number

Zoom:
  +, -        Zoom in / out
  0           Reset zoom to 100%

Fit and rotation:
  w           Fit width
  e           Fit height
  f           Fit page
  a           Actual size
  r, R        Rotate clockwise / counter-clockwise

Other:
  /           Search the current page
  o           Open another file
  q, ctrl+c   Quit

[any key] back to the document`
}

// openCmd opens a document through the viewer service.
func (a *App) openCmd(path string) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		err := a.ports.Viewer.Open(ctx, path)
		return messages.DocumentOpened{Path: path, Err: err}
	}
}

// reloadCmd reloads the open document after a change on disk.
func (a *App) reloadCmd() tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		err := a.ports.Viewer.Reopen(ctx)
		return messages.DocumentReloaded{Err: err}
	}
}

// startWatch begins watching the opened file, replacing any previous
// watch. Returns nil when watching is disabled or unavailable.
func (a *App) startWatch(path string) tea.Cmd {
	a.stopWatch()
	if a.ports.Watcher == nil || !a.settings.WatchFiles {
		return nil
	}

	watchCtx, cancel := context.WithCancel(a.ctx)
	ticks, err := a.ports.Watcher.Watch(watchCtx, path)
	if err != nil {
		cancel()
		logger.Warn("watch %s: %v", path, err)
		return nil
	}

	a.watchCancel = cancel
	a.watchTicks = ticks
	return waitForChange(ticks)
}

// stopWatch cancels the active file watch, if any.
func (a *App) stopWatch() {
	if a.watchCancel != nil {
		a.watchCancel()
		a.watchCancel = nil
		a.watchTicks = nil
	}
}

// waitForChange blocks until the watched file changes or the watch
// stops.
func waitForChange(ticks <-chan struct{}) tea.Cmd {
	if ticks == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ticks; !ok {
			return nil
		}
		return messages.FileChanged{}
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.openView.SetDimensions(width, height)
	a.viewerView.SetDimensions(width, height)
}
