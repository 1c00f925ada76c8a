package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitMode_IsValid(t *testing.T) {
	tests := []struct {
		mode  FitMode
		valid bool
	}{
		{FitWidth, true},
		{FitHeight, true},
		{FitPage, true},
		{FitActualSize, true},
		{FitMode(""), false},
		{FitMode("stretch"), false},
		{FitMode("WIDTH"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.mode.IsValid())
		})
	}
}

func TestFitMode_IsFitting(t *testing.T) {
	assert.True(t, FitWidth.IsFitting())
	assert.True(t, FitHeight.IsFitting())
	assert.True(t, FitPage.IsFitting())
	assert.False(t, FitActualSize.IsFitting())
	assert.False(t, FitMode("bogus").IsFitting())
}

func TestFitMode_Description(t *testing.T) {
	assert.Equal(t, "Fit Width", FitWidth.Description())
	assert.Equal(t, "Fit Height", FitHeight.Description())
	assert.Equal(t, "Fit Page", FitPage.Description())
	assert.Equal(t, "Actual Size", FitActualSize.Description())
	assert.Equal(t, "Unknown", FitMode("bogus").Description())
}

func TestPlacement_IsValid(t *testing.T) {
	assert.True(t, PlacementCentered.IsValid())
	assert.True(t, PlacementTopLeft.IsValid())
	assert.False(t, Placement("floating").IsValid())
}
