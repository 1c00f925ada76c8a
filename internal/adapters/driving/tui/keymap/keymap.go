// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// NextPage advances one page.
	NextPage key.Binding

	// PrevPage steps back one page.
	PrevPage key.Binding

	// FirstPage jumps to page 1.
	FirstPage key.Binding

	// LastPage jumps to the final page.
	LastPage key.Binding

	// GoToPage prompts for a page number.
	GoToPage key.Binding

	// ScrollUp pans the view up within the page.
	ScrollUp key.Binding

	// ScrollDown pans the view down within the page.
	ScrollDown key.Binding

	// ZoomIn increases the zoom.
	ZoomIn key.Binding

	// ZoomOut decreases the zoom.
	ZoomOut key.Binding

	// ResetZoom returns to 100%.
	ResetZoom key.Binding

	// FitWidth fits the page width to the viewport.
	FitWidth key.Binding

	// FitHeight fits the page height to the viewport.
	FitHeight key.Binding

	// FitPage fits the whole page to the viewport.
	FitPage key.Binding

	// ActualSize shows the page at 100%.
	ActualSize key.Binding

	// RotateCW rotates a quarter turn clockwise.
	RotateCW key.Binding

	// RotateCCW rotates a quarter turn counter-clockwise.
	RotateCCW key.Binding

	// Search prompts for a query on the current page.
	Search key.Binding

	// Open shows the file picker.
	Open key.Binding

	// Confirm submits a prompt.
	Confirm key.Binding

	// Cancel dismisses a prompt.
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown", " "),
			key.WithHelp("→/l", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "previous page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		GoToPage: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to page"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		ResetZoom: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset zoom"),
		),
		FitWidth: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "fit width"),
		),
		FitHeight: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "fit height"),
		),
		FitPage: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fit page"),
		),
		ActualSize: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "actual size"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rotate back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open file"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Search, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.ScrollUp, k.ScrollDown, k.FirstPage, k.LastPage, k.GoToPage},
		{k.ZoomIn, k.ZoomOut, k.ResetZoom},
		{k.FitWidth, k.FitHeight, k.FitPage, k.ActualSize},
		{k.RotateCW, k.RotateCCW},
		{k.Search, k.Open, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
