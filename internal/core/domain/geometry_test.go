package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPageSize_Oriented(t *testing.T) {
	page := PageSize{Width: 595, Height: 842}

	assert.Equal(t, page, page.Oriented(0))
	assert.Equal(t, PageSize{Width: 842, Height: 595}, page.Oriented(90))
	assert.Equal(t, page, page.Oriented(180))
	assert.Equal(t, PageSize{Width: 842, Height: 595}, page.Oriented(270))
	assert.Equal(t, PageSize{Width: 842, Height: 595}, page.Oriented(-90))
}

func TestPageSize_IsZero(t *testing.T) {
	assert.True(t, PageSize{}.IsZero())
	assert.True(t, PageSize{Width: 595}.IsZero())
	assert.True(t, PageSize{Width: -1, Height: 10}.IsZero())
	assert.False(t, PageSize{Width: 595, Height: 842}.IsZero())
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in       int
		expected int
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{-810, 270},
		{720, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeRotation(tt.in), "input %d", tt.in)
	}
}

func TestRect_Dimensions(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 110, Y1: 45}
	assert.Equal(t, 100.0, r.Width())
	assert.Equal(t, 25.0, r.Height())
}

func TestFileInfo_SizeMB(t *testing.T) {
	info := FileInfo{
		Name:     "report.pdf",
		Path:     "/tmp/report.pdf",
		Size:     3 * 1024 * 1024 / 2, // 1.5 MB
		Modified: time.Now(),
	}
	assert.InDelta(t, 1.5, info.SizeMB(), 0.01)

	assert.Equal(t, 0.0, FileInfo{}.SizeMB())
}
