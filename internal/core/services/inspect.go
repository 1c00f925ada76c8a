package services

import (
	"context"
	"fmt"
	"time"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// Inspect opens a document just long enough to gather its metadata for
// the info command, then closes it again.
func Inspect(ctx context.Context, loader driven.DocumentLoader, validator driven.FileValidator, path string) (*driving.DocumentInfo, error) {
	if validator != nil && !validator.LooksLikePDF(path) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFormat, path)
	}

	doc, err := loader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadable, err)
	}
	defer doc.Close()

	info := &driving.DocumentInfo{
		PageCount: doc.PageCount(),
		Metadata:  doc.Metadata(),
		OpenedAt:  time.Now(),
	}
	if validator != nil {
		if file, err := validator.FileInfo(path); err == nil {
			info.File = file
		}
	}
	if info.PageCount > 0 {
		if size, err := doc.PageSize(0); err == nil {
			info.FirstPage = size
		}
	}

	return info, nil
}
