// Package open implements the file picker view for choosing a PDF.
package open

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/keymap"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/messages"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
)

// chromeRows is the height taken by the title and help lines.
const chromeRows = 4

// View is the file picker view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	picker filepicker.Model

	// allowBack is true when a document is already open, so esc can
	// return to it.
	allowBack bool

	width  int
	height int
}

// NewView creates the file picker view rooted at the working directory.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	return &View{
		styles: s,
		keymap: km,
		picker: fp,
	}
}

// Init initialises the picker.
func (v *View) Init() tea.Cmd {
	return v.picker.Init()
}

// SetAllowBack controls whether esc returns to the viewer.
func (v *View) SetAllowBack(allow bool) {
	v.allowBack = allow
}

// SetDimensions updates the terminal size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.picker.Height = height - chromeRows
	if v.picker.Height < 1 {
		v.picker.Height = 1
	}
}

// Update handles picker messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		k := keyMsg.String()
		if keymap.Matches(k, v.keymap.Quit) && k != "q" {
			// ctrl+c only; q is a legal filename character here.
			return v, func() tea.Msg { return messages.Quit{} }
		}
		if keymap.Matches(k, v.keymap.Back) && v.allowBack {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewViewer}
			}
		}
	}

	var cmd tea.Cmd
	v.picker, cmd = v.picker.Update(msg)

	if chosen, path := v.picker.DidSelectFile(msg); chosen {
		return v, tea.Batch(cmd, func() tea.Msg {
			return messages.FileChosen{Path: path}
		})
	}

	return v, cmd
}

// View renders the picker with a title and help line.
func (v *View) View() string {
	var sb strings.Builder
	sb.WriteString(v.styles.Title.Render("Open a PDF"))
	sb.WriteString("\n\n")
	sb.WriteString(v.picker.View())
	sb.WriteString("\n")

	help := "enter: open  |  ctrl+c: quit"
	if v.allowBack {
		help = "enter: open  |  esc: back  |  ctrl+c: quit"
	}
	sb.WriteString(v.styles.Help.Render(help))
	return sb.String()
}
