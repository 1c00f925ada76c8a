package driven

import (
	"context"
	"image"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// DocumentLoader opens PDF files. Implementations wrap an external
// rendering library; parsing and rasterisation semantics are entirely
// the library's concern.
type DocumentLoader interface {
	// Open parses the file at path and returns a handle to it.
	// The returned Document is exclusively owned by the caller and
	// must be closed.
	Open(ctx context.Context, path string) (Document, error)
}

// Document is an opened PDF. All methods take page indexes zero-based.
// Implementations are not required to be safe for concurrent use; the
// viewer only touches a Document from the event loop.
type Document interface {
	// Close releases the underlying handle. Idempotent.
	Close() error

	// PageCount returns the number of pages.
	PageCount() int

	// PageSize returns the native size of a page in PDF points.
	PageSize(index int) (domain.PageSize, error)

	// RenderPage rasterises a page at the given zoom factor and view
	// rotation (degrees, multiples of 90) and returns the bitmap.
	RenderPage(ctx context.Context, index int, zoom float64, rotation int) (image.Image, error)

	// PageText extracts the text layer of a page.
	PageText(ctx context.Context, index int) (string, error)

	// SearchPage finds query occurrences on a single page. An empty
	// result means "not found", not an error.
	SearchPage(ctx context.Context, index int, query string, caseSensitive bool) ([]domain.Match, error)

	// Metadata returns the document information dictionary (title,
	// author, producer, ...) as reported by the rendering library.
	Metadata() map[string]string
}
