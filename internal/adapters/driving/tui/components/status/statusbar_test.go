package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/keymap"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

func openState() driving.ViewerState {
	return driving.ViewerState{
		Open:           true,
		File:           domain.FileInfo{Name: "report.pdf", Path: "/tmp/report.pdf"},
		CurrentPage:    2,
		PageCount:      10,
		Zoom:           1.5,
		ZoomPercentage: "150%",
		FitMode:        domain.FitWidth,
	}
}

func TestNewBar(t *testing.T) {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	bar := NewBar(s, km)

	require.NotNil(t, bar)
	assert.False(t, bar.State().Open)
	assert.Equal(t, "", bar.Message())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_Init(t *testing.T) {
	bar := NewBar(nil, nil)

	cmd := bar.Init()

	assert.Nil(t, cmd)
}

func TestStatusBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	updated, cmd := bar.Update(msg)

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_SetState(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(openState())

	assert.True(t, bar.State().Open)
	assert.Equal(t, 2, bar.State().CurrentPage)
}

func TestStatusBar_View_NoDocument(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Contains(t, bar.View(), "No document")
}

func TestStatusBar_View_OpenDocument(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)
	bar.SetState(openState())

	view := bar.View()

	assert.Contains(t, view, "report.pdf")
	assert.Contains(t, view, "Page 2/10")
	assert.Contains(t, view, "150%")
	assert.Contains(t, view, domain.FitWidth.Description())
}

func TestStatusBar_View_RotationAndMatches(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(240)
	state := openState()
	state.Rotation = 90
	state.MatchCount = 3
	bar.SetState(state)

	view := bar.View()

	assert.Contains(t, view, "90°")
	assert.Contains(t, view, "3 matches")
}

func TestStatusBar_Message(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(openState())

	bar.SetMessage("File changed on disk, reloaded")

	assert.Equal(t, "File changed on disk, reloaded", bar.Message())
	assert.Contains(t, bar.View(), "reloaded")
	// A transient message replaces the state line.
	assert.NotContains(t, bar.View(), "Page 2/10")
}

func TestStatusBar_ErrorMessage(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetError("render failed")

	assert.Equal(t, "render failed", bar.Message())
	assert.True(t, bar.isError)
}

func TestStatusBar_ClearMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetError("render failed")

	bar.ClearMessage()

	assert.Equal(t, "", bar.Message())
	assert.False(t, bar.isError)
}

func TestStatusBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}
