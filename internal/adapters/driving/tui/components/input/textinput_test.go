package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
)

func TestNewPrompt(t *testing.T) {
	s := styles.DefaultStyles()
	prompt := NewPrompt(s, "Search:", "enter a query")

	require.NotNil(t, prompt)
	assert.Equal(t, "", prompt.Value())
	assert.False(t, prompt.Focused())
}

func TestNewPrompt_NilStyles(t *testing.T) {
	prompt := NewPrompt(nil, "Search:", "")

	require.NotNil(t, prompt)
	assert.NotNil(t, prompt.styles)
}

func TestPrompt_Init(t *testing.T) {
	prompt := NewPrompt(nil, "Search:", "")

	cmd := prompt.Init()

	// Blink command should be returned
	assert.NotNil(t, cmd)
}

func TestPrompt_Update(t *testing.T) {
	prompt := NewPrompt(nil, "Search:", "")
	prompt.Focus()

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	updated, cmd := prompt.Update(msg)

	assert.Equal(t, prompt, updated)
	// textinput returns nil cmd for regular key presses
	_ = cmd
	assert.Equal(t, "a", prompt.Value())
}

func TestPrompt_View(t *testing.T) {
	prompt := NewPrompt(nil, "Go to page:", "")

	view := prompt.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Go to page:")
}

func TestPrompt_SetValue(t *testing.T) {
	prompt := NewPrompt(nil, "Search:", "")

	prompt.SetValue("invoice total")

	assert.Equal(t, "invoice total", prompt.Value())
}

func TestPrompt_FocusAndBlur(t *testing.T) {
	prompt := NewPrompt(nil, "Search:", "")

	prompt.Focus()
	assert.True(t, prompt.Focused())

	prompt.Blur()
	assert.False(t, prompt.Focused())
}

func TestPrompt_Reset(t *testing.T) {
	prompt := NewPrompt(nil, "Search:", "")
	prompt.SetValue("stale query")

	prompt.Reset()

	assert.Equal(t, "", prompt.Value())
}

func TestPrompt_SetWidth(t *testing.T) {
	prompt := NewPrompt(nil, "Search:", "")

	prompt.SetWidth(100)

	assert.Equal(t, 100, prompt.Width())
}

func TestPrompt_SetWidth_EnforcesMinimum(t *testing.T) {
	prompt := NewPrompt(nil, "Search:", "")

	prompt.SetWidth(5)

	// The inner field never shrinks below a usable size.
	assert.Equal(t, 5, prompt.Width())
	assert.GreaterOrEqual(t, prompt.textinput.Width, 16)
}
