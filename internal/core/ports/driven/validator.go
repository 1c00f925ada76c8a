package driven

import "github.com/folio-labs/folio-cli/internal/core/domain"

// FileValidator performs cheap checks on a path before the loader is
// asked to parse it.
type FileValidator interface {
	// LooksLikePDF reports whether the file exists, has a .pdf
	// extension, and starts with the %PDF signature bytes.
	LooksLikePDF(path string) bool

	// FileInfo returns display metadata for the file.
	FileInfo(path string) (domain.FileInfo, error)
}
