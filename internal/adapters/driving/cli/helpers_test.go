package cli

import (
	"context"
	"errors"
	"image"
	"strings"

	"github.com/folio-labs/folio-cli/internal/adapters/driven/config/memory"
	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/services"
)

// fakeDocument is a canned three-page document for command tests.
type fakeDocument struct {
	pages int
	text  string
}

func (d *fakeDocument) Close() error { return nil }

func (d *fakeDocument) PageCount() int { return d.pages }

func (d *fakeDocument) PageSize(int) (domain.PageSize, error) {
	return domain.PageSize{Width: 595, Height: 842}, nil
}

func (d *fakeDocument) RenderPage(_ context.Context, _ int, zoom float64, rotation int) (image.Image, error) {
	w, h := int(595*zoom), int(842*zoom)
	if rotation == 90 || rotation == 270 {
		w, h = h, w
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

func (d *fakeDocument) PageText(context.Context, int) (string, error) {
	return d.text, nil
}

func (d *fakeDocument) SearchPage(_ context.Context, index int, query string, caseSensitive bool) ([]domain.Match, error) {
	haystack, needle := d.text, query
	if !caseSensitive {
		haystack, needle = strings.ToLower(haystack), strings.ToLower(needle)
	}
	var matches []domain.Match
	for from := 0; ; {
		at := strings.Index(haystack[from:], needle)
		if at < 0 {
			break
		}
		matches = append(matches, domain.Match{PageIndex: index, Text: query})
		from += at + len(needle)
	}
	return matches, nil
}

func (d *fakeDocument) Metadata() map[string]string {
	return map[string]string{"title": "Test Document"}
}

type fakeLoader struct {
	doc driven.Document
	err error
}

func (l *fakeLoader) Open(context.Context, string) (driven.Document, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.doc, nil
}

type fakeValidator struct {
	valid bool
}

func (v *fakeValidator) LooksLikePDF(string) bool { return v.valid }

func (v *fakeValidator) FileInfo(path string) (domain.FileInfo, error) {
	return domain.FileInfo{Name: "report.pdf", Path: path, Size: 4096}, nil
}

// setupTestServices wires fake collaborators into the package and
// returns a cleanup that restores the previous ones.
func setupTestServices() func() {
	prevLoader := docLoader
	prevValidator := fileValidator
	prevSettings := settingsService

	docLoader = &fakeLoader{doc: &fakeDocument{pages: 3, text: "the quick brown fox"}}
	fileValidator = &fakeValidator{valid: true}
	settingsService = services.NewSettingsService(memory.NewConfigStore())

	return func() {
		docLoader = prevLoader
		fileValidator = prevValidator
		settingsService = prevSettings
	}
}

// setupFailingLoader wires a loader that always fails.
func setupFailingLoader(message string) func() {
	cleanup := setupTestServices()
	docLoader = &fakeLoader{err: errors.New(message)}
	return cleanup
}
