package services

import (
	"context"
	"errors"
	"image"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
)

// stubDocument is an in-memory document handle for service tests.
type stubDocument struct {
	pages     int
	size      domain.PageSize
	sizeErr   error
	text      string
	textErr   error
	renderErr error
	searchErr error
	matches   []domain.Match
	metadata  map[string]string
	closed    bool
}

func (d *stubDocument) Close() error {
	d.closed = true
	return nil
}

func (d *stubDocument) PageCount() int {
	return d.pages
}

func (d *stubDocument) PageSize(int) (domain.PageSize, error) {
	if d.sizeErr != nil {
		return domain.PageSize{}, d.sizeErr
	}
	return d.size, nil
}

func (d *stubDocument) RenderPage(_ context.Context, _ int, zoom float64, _ int) (image.Image, error) {
	if d.renderErr != nil {
		return nil, d.renderErr
	}
	w := int(d.size.Width * zoom)
	h := int(d.size.Height * zoom)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

func (d *stubDocument) PageText(context.Context, int) (string, error) {
	if d.textErr != nil {
		return "", d.textErr
	}
	return d.text, nil
}

func (d *stubDocument) SearchPage(_ context.Context, index int, query string, _ bool) ([]domain.Match, error) {
	if d.searchErr != nil {
		return nil, d.searchErr
	}
	out := make([]domain.Match, len(d.matches))
	copy(out, d.matches)
	for i := range out {
		out[i].PageIndex = index
		if out[i].Text == "" {
			out[i].Text = query
		}
	}
	return out, nil
}

func (d *stubDocument) Metadata() map[string]string {
	return d.metadata
}

// stubLoader hands out a prepared document, or fails.
type stubLoader struct {
	doc     *stubDocument
	err     error
	opened  int
	lastCtx context.Context
}

func (l *stubLoader) Open(ctx context.Context, _ string) (driven.Document, error) {
	l.lastCtx = ctx
	if l.err != nil {
		return nil, l.err
	}
	l.opened++
	l.doc.closed = false
	return l.doc, nil
}

// stubValidator accepts or rejects every path.
type stubValidator struct {
	valid bool
	info  domain.FileInfo
}

func (v *stubValidator) LooksLikePDF(string) bool {
	return v.valid
}

func (v *stubValidator) FileInfo(string) (domain.FileInfo, error) {
	if v.info == (domain.FileInfo{}) {
		return domain.FileInfo{}, errors.New("no file info")
	}
	return v.info, nil
}

func a4Document(pages int) *stubDocument {
	return &stubDocument{
		pages: pages,
		size:  domain.PageSize{Width: 595, Height: 842},
	}
}
