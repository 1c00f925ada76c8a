// Package status provides the viewer status bar.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/keymap"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// Bar displays the document position, view state, and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   driving.ViewerState
	message string
	isError bool
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// Init initialises the status bar.
func (b *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (b *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return b, nil
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := b.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the document position and view state.
func (b *Bar) renderLeft() string {
	if b.message != "" {
		if b.isError {
			return b.styles.Error.Render(b.message)
		}
		return b.styles.Normal.Render(b.message)
	}

	if !b.state.Open {
		return b.styles.Muted.Render("No document")
	}

	parts := []string{
		b.state.File.Name,
		fmt.Sprintf("Page %d/%d", b.state.CurrentPage, b.state.PageCount),
		b.state.ZoomPercentage,
		b.state.FitMode.Description(),
	}
	if b.state.Rotation != 0 {
		parts = append(parts, fmt.Sprintf("%d°", b.state.Rotation))
	}
	if b.state.MatchCount > 0 {
		parts = append(parts, fmt.Sprintf("%d matches", b.state.MatchCount))
	}
	return b.styles.Normal.Render(strings.Join(parts, "  |  "))
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	bindings := b.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState updates the displayed viewer state.
func (b *Bar) SetState(state driving.ViewerState) {
	b.state = state
}

// State returns the displayed viewer state.
func (b *Bar) State() driving.ViewerState {
	return b.state
}

// SetMessage shows a transient message instead of the state line.
func (b *Bar) SetMessage(message string) {
	b.message = message
	b.isError = false
}

// SetError shows a transient error message.
func (b *Bar) SetError(message string) {
	b.message = message
	b.isError = true
}

// Message returns the current transient message.
func (b *Bar) Message() string {
	return b.message
}

// ClearMessage removes the transient message.
func (b *Bar) ClearMessage() {
	b.message = ""
	b.isError = false
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}
