// Package viewer implements the document display view: the rendered
// page, the status bar, and the search and go-to-page prompts.
package viewer

import (
	"context"
	"fmt"
	"image"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/components/input"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/components/pagecells"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/components/status"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/keymap"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/messages"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// promptMode tracks which prompt, if any, owns the keyboard.
type promptMode int

const (
	promptNone promptMode = iota
	promptSearch
	promptGoto
)

// statusBarRows is the height reserved below the page area.
const statusBarRows = 1

// View is the document display view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	viewer driving.ViewerService

	statusBar    *status.Bar
	searchPrompt *input.Prompt
	gotoPrompt   *input.Prompt
	prompt       promptMode

	ctx     context.Context
	page    image.Image
	request *domain.RenderRequest

	// scroll is the vertical pixel offset into a page taller than the
	// cell grid.
	scroll int

	width  int
	height int
}

// NewView creates the viewer view.
func NewView(s *styles.Styles, km *keymap.KeyMap, viewer driving.ViewerService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		viewer:       viewer,
		statusBar:    status.NewBar(s, km),
		searchPrompt: input.NewPrompt(s, "Search:", "text to find on this page"),
		gotoPrompt:   input.NewPrompt(s, "Go to page:", "page number"),
		prompt:       promptNone,
		ctx:          context.Background(),
	}
}

// SetContext sets the context used for render and search calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDimensions updates the terminal size, pushes the new viewport
// into the viewer, and re-renders when a page is open.
func (v *View) SetDimensions(width, height int) tea.Cmd {
	v.width = width
	v.height = height
	v.statusBar.SetWidth(width)
	v.searchPrompt.SetWidth(width)
	v.gotoPrompt.SetWidth(width)

	// One cell is one pixel across and two pixels down.
	cols, rows := v.pageArea()
	return v.apply(domain.SetViewport{Width: cols, Height: rows * 2})
}

// pageArea returns the cell grid available for the page.
func (v *View) pageArea() (int, int) {
	rows := v.height - statusBarRows
	if v.prompt != promptNone {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	cols := v.width
	if cols < 1 {
		cols = 1
	}
	return cols, rows
}

// Update handles messages for the viewer view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.prompt != promptNone {
			return v.updatePrompt(msg)
		}
		return v.handleKey(msg)

	case messages.DocumentOpened:
		if msg.Err != nil {
			v.statusBar.SetError(msg.Err.Error())
			return v, nil
		}
		v.statusBar.ClearMessage()
		v.statusBar.SetState(v.viewer.State())
		return v, v.renderCmd()

	case messages.PageRendered:
		if msg.Err != nil {
			v.statusBar.SetError(msg.Err.Error())
			return v, nil
		}
		v.page = msg.Image
		v.request = msg.Request
		if msg.Request != nil && msg.Request.AutoScroll {
			v.scroll = 0
		}
		_, rows := v.pageArea()
		if max := pagecells.MaxScroll(v.page, rows); v.scroll > max {
			v.scroll = max
		}
		v.statusBar.SetState(v.viewer.State())
		return v, nil

	case messages.SearchCompleted:
		if msg.Err != nil {
			v.statusBar.SetError(msg.Err.Error())
			return v, nil
		}
		v.statusBar.SetState(v.viewer.State())
		if len(msg.Matches) == 0 {
			v.statusBar.SetMessage(fmt.Sprintf("No matches for %q on this page", msg.Query))
		} else {
			v.statusBar.ClearMessage()
		}
		return v, v.renderCmd()

	case messages.DocumentReloaded:
		if msg.Err != nil {
			v.statusBar.SetError(fmt.Sprintf("reload failed: %v", msg.Err))
			return v, nil
		}
		v.statusBar.SetState(v.viewer.State())
		v.statusBar.SetMessage("File changed on disk, reloaded")
		return v, v.renderCmd()

	case messages.ErrorOccurred:
		v.statusBar.SetError(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKey dispatches a key press against the keymap.
//
//nolint:gocyclo // single dispatch point over the whole keymap
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(k, v.keymap.Help):
		return v, changeView(messages.ViewHelp)

	case keymap.Matches(k, v.keymap.Open):
		return v, changeView(messages.ViewOpen)

	case keymap.Matches(k, v.keymap.NextPage):
		return v, v.apply(domain.NextPage{})
	case keymap.Matches(k, v.keymap.PrevPage):
		return v, v.apply(domain.PrevPage{})
	case keymap.Matches(k, v.keymap.ScrollDown):
		return v, v.scrollBy(v.scrollStep())
	case keymap.Matches(k, v.keymap.ScrollUp):
		return v, v.scrollBy(-v.scrollStep())
	case keymap.Matches(k, v.keymap.FirstPage):
		return v, v.apply(domain.FirstPage{})
	case keymap.Matches(k, v.keymap.LastPage):
		return v, v.apply(domain.LastPage{})

	case keymap.Matches(k, v.keymap.ZoomIn):
		return v, v.apply(domain.ZoomIn{})
	case keymap.Matches(k, v.keymap.ZoomOut):
		return v, v.apply(domain.ZoomOut{})
	case keymap.Matches(k, v.keymap.ResetZoom):
		return v, v.apply(domain.ResetZoom{})

	case keymap.Matches(k, v.keymap.FitWidth):
		return v, v.apply(domain.SetFitMode{Mode: domain.FitWidth})
	case keymap.Matches(k, v.keymap.FitHeight):
		return v, v.apply(domain.SetFitMode{Mode: domain.FitHeight})
	case keymap.Matches(k, v.keymap.FitPage):
		return v, v.apply(domain.SetFitMode{Mode: domain.FitPage})
	case keymap.Matches(k, v.keymap.ActualSize):
		return v, v.apply(domain.SetFitMode{Mode: domain.FitActualSize})

	case keymap.Matches(k, v.keymap.RotateCW):
		return v, v.apply(domain.Rotate{Degrees: 90})
	case keymap.Matches(k, v.keymap.RotateCCW):
		return v, v.apply(domain.Rotate{Degrees: -90})

	case keymap.Matches(k, v.keymap.GoToPage):
		return v.openPrompt(promptGoto)
	case keymap.Matches(k, v.keymap.Search):
		return v.openPrompt(promptSearch)
	}

	return v, nil
}

// scrollStep is half the visible page height in pixels.
func (v *View) scrollStep() int {
	_, rows := v.pageArea()
	return rows
}

// scrollBy pans the view vertically. Scrolling past an edge turns the
// page instead, so a tall zoomed page reads straight through.
func (v *View) scrollBy(deltaPx int) tea.Cmd {
	if v.page == nil {
		return nil
	}
	_, rows := v.pageArea()
	max := pagecells.MaxScroll(v.page, rows)

	next := v.scroll + deltaPx
	switch {
	case next < 0 && v.scroll == 0:
		return v.apply(domain.PrevPage{})
	case next > max && v.scroll == max:
		return v.apply(domain.NextPage{})
	}

	if next < 0 {
		next = 0
	}
	if next > max {
		next = max
	}
	v.scroll = next
	return nil
}

// openPrompt activates a prompt and resizes the page area around it.
func (v *View) openPrompt(mode promptMode) (*View, tea.Cmd) {
	v.prompt = mode

	var focus tea.Cmd
	switch mode {
	case promptSearch:
		v.searchPrompt.Reset()
		focus = v.searchPrompt.Focus()
	case promptGoto:
		v.gotoPrompt.Reset()
		focus = v.gotoPrompt.Focus()
	case promptNone:
	}

	cols, rows := v.pageArea()
	return v, tea.Batch(focus, v.apply(domain.SetViewport{Width: cols, Height: rows * 2}))
}

// closePrompt dismisses the active prompt and restores the page area.
func (v *View) closePrompt() tea.Cmd {
	v.prompt = promptNone
	v.searchPrompt.Blur()
	v.gotoPrompt.Blur()

	cols, rows := v.pageArea()
	return v.apply(domain.SetViewport{Width: cols, Height: rows * 2})
}

// updatePrompt routes keys to the active prompt.
func (v *View) updatePrompt(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	if keymap.Matches(k, v.keymap.Cancel) {
		return v, v.closePrompt()
	}

	if keymap.Matches(k, v.keymap.Confirm) {
		switch v.prompt {
		case promptSearch:
			query := v.searchPrompt.Value()
			return v, tea.Batch(v.closePrompt(), v.searchCmd(query))
		case promptGoto:
			raw := strings.TrimSpace(v.gotoPrompt.Value())
			closeCmd := v.closePrompt()
			page, err := strconv.Atoi(raw)
			if err != nil {
				v.statusBar.SetError(fmt.Sprintf("not a page number: %q", raw))
				return v, closeCmd
			}
			return v, tea.Batch(closeCmd, v.apply(domain.GoToPage{Number: page}))
		case promptNone:
		}
		return v, nil
	}

	var cmd tea.Cmd
	switch v.prompt {
	case promptSearch:
		v.searchPrompt, cmd = v.searchPrompt.Update(msg)
	case promptGoto:
		v.gotoPrompt, cmd = v.gotoPrompt.Update(msg)
	case promptNone:
	}
	return v, cmd
}

// apply runs one command against the viewer. Boundary no-ops refresh
// nothing; errors land in the status bar.
func (v *View) apply(cmd domain.Command) tea.Cmd {
	req, err := v.viewer.Apply(cmd)
	if err != nil {
		v.statusBar.SetError(err.Error())
		return nil
	}
	v.statusBar.ClearMessage()
	v.statusBar.SetState(v.viewer.State())
	if req == nil {
		return nil
	}
	return v.renderCmd()
}

// renderCmd rasterises the current page asynchronously.
func (v *View) renderCmd() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		img, req, err := v.viewer.Render(ctx)
		return messages.PageRendered{Image: img, Request: req, Err: err}
	}
}

// searchCmd runs a search on the current page asynchronously.
func (v *View) searchCmd(query string) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		matches, err := v.viewer.Search(ctx, query)
		return messages.SearchCompleted{Query: query, Matches: matches, Err: err}
	}
}

// View renders the page area, the active prompt, and the status bar.
func (v *View) View() string {
	cols, rows := v.pageArea()

	var sections []string
	sections = append(sections, v.viewPage(cols, rows))

	switch v.prompt {
	case promptSearch:
		sections = append(sections, v.searchPrompt.View())
	case promptGoto:
		sections = append(sections, v.gotoPrompt.View())
	case promptNone:
	}

	sections = append(sections, v.statusBar.View())
	return strings.Join(sections, "\n")
}

// viewPage renders the page bitmap into the cell grid.
func (v *View) viewPage(cols, rows int) string {
	if v.page == nil || v.request == nil {
		empty := v.styles.Muted.Render("No page to display. Press o to open a file, ? for help.")
		return lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, empty)
	}

	shown := pagecells.Tint(v.page, v.viewer.Matches(), v.request.Zoom, v.request.Rotation)
	shown, _ = pagecells.Crop(shown, cols, rows, v.scroll)
	cells := pagecells.Render(shown, cols, rows)

	hAlign := lipgloss.Left
	vAlign := lipgloss.Top
	if v.request.Placement == domain.PlacementCentered {
		hAlign = lipgloss.Center
		vAlign = lipgloss.Center
	}
	return lipgloss.Place(cols, rows, hAlign, vAlign, cells)
}

// Page returns the last rendered page bitmap (for testing).
func (v *View) Page() image.Image {
	return v.page
}

// Prompting reports whether a prompt currently owns the keyboard.
func (v *View) Prompting() bool {
	return v.prompt != promptNone
}

// StatusMessage returns the transient status bar message (for testing).
func (v *View) StatusMessage() string {
	return v.statusBar.Message()
}

// changeView produces a view navigation message.
func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}
