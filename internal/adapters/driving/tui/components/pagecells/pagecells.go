// Package pagecells converts rendered page bitmaps into terminal cells.
// Each character cell shows two vertically stacked pixels through the
// upper-half-block glyph: the foreground colour carries the top pixel
// and the background colour the bottom one, which roughly squares the
// terminal's tall cell geometry.
package pagecells

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

const halfBlock = "▀"

// CellSize returns the character grid an image occupies when scaled to
// fit cols x rows cells while preserving aspect ratio.
func CellSize(img image.Image, cols, rows int) (int, int) {
	if img == nil || cols < 1 || rows < 1 {
		return 0, 0
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return 0, 0
	}

	// A cell is one pixel wide and two pixels tall.
	scaleX := float64(cols) / float64(b.Dx())
	scaleY := float64(rows*2) / float64(b.Dy())
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	if scale > 1.0 {
		scale = 1.0
	}

	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale / 2)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// MaxScroll returns how many pixels of the image lie below a rows-high
// cell grid, i.e. the vertical scroll range.
func MaxScroll(img image.Image, rows int) int {
	if img == nil || rows < 1 {
		return 0
	}
	m := img.Bounds().Dy() - rows*2
	if m < 0 {
		m = 0
	}
	return m
}

// Crop returns the part of the image visible in a cols x rows cell
// grid at the given vertical pixel offset, along with the offset
// clamped to the scrollable range. Images that already fit are
// returned unchanged; overwide images are cropped to a horizontally
// centred window.
func Crop(img image.Image, cols, rows, offsetY int) (image.Image, int) {
	if img == nil || cols < 1 || rows < 1 {
		return img, 0
	}

	b := img.Bounds()
	viewW, viewH := cols, rows*2
	if b.Dx() <= viewW && b.Dy() <= viewH {
		return img, 0
	}

	maxY := b.Dy() - viewH
	if maxY < 0 {
		maxY = 0
	}
	if offsetY < 0 {
		offsetY = 0
	}
	if offsetY > maxY {
		offsetY = maxY
	}

	x0 := b.Min.X
	if b.Dx() > viewW {
		x0 += (b.Dx() - viewW) / 2
	}
	w := b.Dx()
	if w > viewW {
		w = viewW
	}
	h := b.Dy() - offsetY
	if h > viewH {
		h = viewH
	}

	window := image.Rect(0, 0, w, h)
	out := image.NewRGBA(window)
	draw.Draw(out, window, img, image.Pt(x0, b.Min.Y+offsetY), draw.Src)
	return out, offsetY
}

// Render scales the image to fit within cols x rows cells and returns
// it as styled half-block lines.
func Render(img image.Image, cols, rows int) string {
	cellW, cellH := CellSize(img, cols, rows)
	if cellW == 0 || cellH == 0 {
		return ""
	}

	scaled := image.NewRGBA(image.Rect(0, 0, cellW, cellH*2))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	var sb strings.Builder
	for y := 0; y < cellH; y++ {
		for x := 0; x < cellW; x++ {
			top := scaled.RGBAAt(x, y*2)
			bottom := scaled.RGBAAt(x, y*2+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom)))
			sb.WriteString(style.Render(halfBlock))
		}
		if y < cellH-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Tint returns a copy of the image with the given page-space boxes
// shaded for search highlighting. Boxes are in page points and are
// mapped to pixels through the zoom factor. Highlighting is skipped
// when the view is rotated; the boxes no longer line up with the
// bitmap then.
func Tint(img image.Image, boxes []domain.Match, zoom float64, rotation int) image.Image {
	if len(boxes) == 0 || rotation != 0 || zoom <= 0 {
		return img
	}

	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)

	for _, m := range boxes {
		x0 := b.Min.X + int(m.Box.X0*zoom)
		y0 := b.Min.Y + int(m.Box.Y0*zoom)
		x1 := b.Min.X + int(m.Box.X1*zoom)
		y1 := b.Min.Y + int(m.Box.Y1*zoom)
		for y := y0; y < y1 && y < b.Max.Y; y++ {
			if y < b.Min.Y {
				continue
			}
			for x := x0; x < x1 && x < b.Max.X; x++ {
				if x < b.Min.X {
					continue
				}
				out.SetRGBA(x, y, blendHighlight(out.RGBAAt(x, y)))
			}
		}
	}
	return out
}

// blendHighlight shifts a pixel towards amber while keeping the glyph
// underneath readable.
func blendHighlight(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: blend(c.R, 249),
		G: blend(c.G, 226),
		B: blend(c.B, 0),
		A: 255,
	}
}

func blend(under, over uint8) uint8 {
	return uint8((int(under) + int(over)*2) / 3)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
