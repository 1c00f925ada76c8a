// Package fsdoc provides filesystem checks on candidate PDF files:
// the pre-load signature validation and display metadata.
package fsdoc

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
)

// pdfMagic is the 4-byte signature every PDF file starts with.
var pdfMagic = []byte("%PDF")

// Ensure Validator implements the interface.
var _ driven.FileValidator = (*Validator)(nil)

// Validator implements driven.FileValidator against the local filesystem.
type Validator struct{}

// NewValidator creates a file validator.
func NewValidator() *Validator {
	return &Validator{}
}

// LooksLikePDF reports whether the file exists, carries a .pdf
// extension, and begins with the %PDF signature. It never attempts a
// parse; that is the loader's job.
func (v *Validator) LooksLikePDF(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	// ReadFull so a short first read, or a file shorter than the
	// signature, fails the check rather than comparing a partial buffer.
	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}
	return bytes.Equal(header, pdfMagic)
}

// FileInfo returns display metadata for the file.
func (v *Validator) FileInfo(path string) (domain.FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return domain.FileInfo{}, err
	}

	return domain.FileInfo{
		Name:     filepath.Base(path),
		Path:     path,
		Size:     stat.Size(),
		Modified: stat.ModTime(),
	}, nil
}
