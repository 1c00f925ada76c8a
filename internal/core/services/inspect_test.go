package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

func TestInspect(t *testing.T) {
	doc := a4Document(12)
	doc.metadata = map[string]string{"title": "Quarterly Report", "author": "Finance"}
	validator := &stubValidator{
		valid: true,
		info:  domain.FileInfo{Name: "report.pdf", Size: 2048},
	}

	info, err := Inspect(context.Background(), &stubLoader{doc: doc}, validator, "/tmp/report.pdf")
	require.NoError(t, err)

	assert.Equal(t, 12, info.PageCount)
	assert.Equal(t, "Quarterly Report", info.Metadata["title"])
	assert.Equal(t, "report.pdf", info.File.Name)
	assert.Equal(t, domain.PageSize{Width: 595, Height: 842}, info.FirstPage)
	assert.False(t, info.OpenedAt.IsZero())
	assert.True(t, doc.closed, "inspect must not leave the handle open")
}

func TestInspect_RejectsNonPDF(t *testing.T) {
	_, err := Inspect(context.Background(), &stubLoader{doc: a4Document(1)}, &stubValidator{}, "/tmp/notes.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestInspect_UnreadableFile(t *testing.T) {
	loader := &stubLoader{err: errors.New("bad header")}
	_, err := Inspect(context.Background(), loader, &stubValidator{valid: true}, "/tmp/broken.pdf")
	assert.ErrorIs(t, err, domain.ErrUnreadable)
}

func TestInspect_EmptyDocument(t *testing.T) {
	doc := a4Document(0)
	info, err := Inspect(context.Background(), &stubLoader{doc: doc}, &stubValidator{valid: true}, "/tmp/empty.pdf")
	require.NoError(t, err)
	assert.Zero(t, info.PageCount)
	assert.True(t, info.FirstPage.IsZero())
}
