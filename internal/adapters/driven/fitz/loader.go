// Package fitz implements the document loader port on top of MuPDF
// via the go-fitz bindings. All PDF parsing, decoding, and
// rasterisation happens inside MuPDF; this adapter only translates
// between the binding's API and the domain types.
package fitz

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// baseDPI is the resolution at which zoom 1.0 renders. PDF points are
// defined at 72 per inch, so 72 DPI maps one point to one pixel.
const baseDPI = 72.0

// Ensure the adapter implements the ports.
var (
	_ driven.DocumentLoader = (*Loader)(nil)
	_ driven.Document       = (*Document)(nil)
)

// Loader opens PDF files with MuPDF.
type Loader struct{}

// NewLoader creates a MuPDF-backed document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Open parses the file at path and returns a handle to it.
func (l *Loader) Open(_ context.Context, path string) (driven.Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("mupdf open %s: %w", path, err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps an open MuPDF document handle.
type Document struct {
	doc    *fitz.Document
	closed bool
}

// Close releases the MuPDF handle. Idempotent.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.doc.Close()
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	if d.closed {
		return 0
	}
	return d.doc.NumPage()
}

// PageSize returns the native size of a page in PDF points. MuPDF
// reports page bounds at 72 DPI, where one pixel equals one point.
func (d *Document) PageSize(index int) (domain.PageSize, error) {
	if d.closed {
		return domain.PageSize{}, domain.ErrNoDocument
	}
	bound, err := d.doc.Bound(index)
	if err != nil {
		return domain.PageSize{}, fmt.Errorf("page %d bounds: %w", index, err)
	}
	return domain.PageSize{
		Width:  float64(bound.Dx()),
		Height: float64(bound.Dy()),
	}, nil
}

// RenderPage rasterises a page at the given zoom and rotation. MuPDF
// renders at a resolution; rotation is applied to the bitmap
// afterwards since the binding does not expose a rotation matrix.
func (d *Document) RenderPage(_ context.Context, index int, zoom float64, rotation int) (image.Image, error) {
	if d.closed {
		return nil, domain.ErrNoDocument
	}

	img, err := d.doc.ImageDPI(index, baseDPI*domain.ClampZoom(zoom))
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", index, err)
	}

	rotated := rotateImage(img, domain.NormalizeRotation(rotation))
	logger.Debug("rendered page %d at zoom %.2f rotation %d (%dx%d px)",
		index+1, zoom, rotation, rotated.Bounds().Dx(), rotated.Bounds().Dy())
	return rotated, nil
}

// PageText extracts the text layer of a page.
func (d *Document) PageText(_ context.Context, index int) (string, error) {
	if d.closed {
		return "", domain.ErrNoDocument
	}
	text, err := d.doc.Text(index)
	if err != nil {
		return "", fmt.Errorf("page %d text: %w", index, err)
	}
	return text, nil
}

// SearchPage finds query occurrences in a page's text layer. Bounding
// boxes are approximated from line positions within the page bounds;
// the binding does not expose word-level coordinates.
func (d *Document) SearchPage(ctx context.Context, index int, query string, caseSensitive bool) ([]domain.Match, error) {
	if d.closed {
		return nil, domain.ErrNoDocument
	}

	text, err := d.PageText(ctx, index)
	if err != nil {
		return nil, err
	}
	size, err := d.PageSize(index)
	if err != nil {
		size = domain.PageSize{}
	}

	return searchText(text, query, caseSensitive, index, size), nil
}

// Metadata returns the document information dictionary.
func (d *Document) Metadata() map[string]string {
	if d.closed {
		return nil
	}
	return d.doc.Metadata()
}

// rotateImage turns an image by a multiple of 90 degrees clockwise.
// Other angles fall back to the unrotated image.
func rotateImage(src *image.RGBA, rotation int) *image.RGBA {
	if rotation == 0 {
		return src
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.RGBA
	switch rotation {
	case 90, 270:
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	case 180:
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	default:
		return src
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.RGBAAt(b.Min.X+x, b.Min.Y+y)
			switch rotation {
			case 90:
				dst.SetRGBA(h-1-y, x, c)
			case 180:
				dst.SetRGBA(w-1-x, h-1-y, c)
			case 270:
				dst.SetRGBA(y, w-1-x, c)
			}
		}
	}
	return dst
}
