package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_NavigationBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.NextPage.Keys(), "right")
	assert.Contains(t, km.NextPage.Keys(), "l")
	assert.Contains(t, km.PrevPage.Keys(), "left")
	assert.Contains(t, km.PrevPage.Keys(), "h")
	assert.Contains(t, km.FirstPage.Keys(), "g")
	assert.Contains(t, km.LastPage.Keys(), "G")
	assert.Contains(t, km.GoToPage.Keys(), ":")
}

func TestDefaultKeyMap_ScrollBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.ScrollUp.Keys(), "up")
	assert.Contains(t, km.ScrollUp.Keys(), "k")
	assert.Contains(t, km.ScrollDown.Keys(), "down")
	assert.Contains(t, km.ScrollDown.Keys(), "j")
}

func TestDefaultKeyMap_ZoomBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.ZoomIn.Keys(), "+")
	assert.Contains(t, km.ZoomOut.Keys(), "-")
	assert.Contains(t, km.ResetZoom.Keys(), "0")
}

func TestDefaultKeyMap_FitBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.FitWidth.Keys(), "w")
	assert.Contains(t, km.FitHeight.Keys(), "e")
	assert.Contains(t, km.FitPage.Keys(), "f")
	assert.Contains(t, km.ActualSize.Keys(), "a")
}

func TestDefaultKeyMap_RotationBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.RotateCW.Keys(), "r")
	assert.Contains(t, km.RotateCCW.Keys(), "R")
}

func TestDefaultKeyMap_PromptBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Search.Keys(), "/")
	assert.Contains(t, km.Confirm.Keys(), "enter")
	assert.Contains(t, km.Cancel.Keys(), "esc")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	require.NotEmpty(t, bindings)
	assert.Contains(t, bindings, km.Quit)
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	require.NotEmpty(t, groups)
	var all []key.Binding
	for _, group := range groups {
		all = append(all, group...)
	}
	assert.Contains(t, all, km.NextPage)
	assert.Contains(t, all, km.ScrollDown)
	assert.Contains(t, all, km.FitPage)
	assert.Contains(t, all, km.Search)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
	assert.True(t, Matches("right", km.NextPage))
	assert.False(t, Matches("left", km.NextPage))
}
