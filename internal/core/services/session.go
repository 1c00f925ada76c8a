package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// Session is the open/closed lifecycle wrapper around one document
// handle and the current page index. It is either closed (no handle,
// index 0, page count 0) or open (valid handle, 0 <= index < pageCount).
// Sessions are not safe for concurrent use; the viewer mutates them
// only from the event loop.
type Session struct {
	loader    driven.DocumentLoader
	validator driven.FileValidator

	id        string
	doc       driven.Document
	path      string
	file      domain.FileInfo
	pageCount int
	index     int
}

// NewSession creates a closed session.
func NewSession(loader driven.DocumentLoader, validator driven.FileValidator) *Session {
	return &Session{
		loader:    loader,
		validator: validator,
	}
}

// Open validates and loads the document at path. Any open document is
// closed first. On failure the session is left closed, never half-open.
func (s *Session) Open(ctx context.Context, path string) error {
	s.Close()

	if s.validator != nil && !s.validator.LooksLikePDF(path) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidFormat, path)
	}

	doc, err := s.loader.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnreadable, err)
	}

	s.id = uuid.NewString()[:8]
	s.doc = doc
	s.path = path
	s.pageCount = doc.PageCount()
	s.index = 0

	if s.validator != nil {
		if info, err := s.validator.FileInfo(path); err == nil {
			s.file = info
		}
	}

	logger.Debug("session %s: opened %s (%d pages)", s.id, path, s.pageCount)
	return nil
}

// Reload opens the current path again and swaps the fresh handle in,
// clamping the page index to the new page count. The old handle stays
// live when the open fails, so a change notification racing a
// half-written file never takes the document away.
func (s *Session) Reload(ctx context.Context) error {
	if !s.IsOpen() {
		return domain.ErrNoDocument
	}

	doc, err := s.loader.Open(ctx, s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnreadable, err)
	}

	old := s.doc
	s.doc = doc
	s.pageCount = doc.PageCount()
	if s.index >= s.pageCount {
		s.index = s.pageCount - 1
	}
	if s.index < 0 {
		s.index = 0
	}

	if s.validator != nil {
		if info, err := s.validator.FileInfo(s.path); err == nil {
			s.file = info
		}
	}

	if old != doc {
		if err := old.Close(); err != nil {
			logger.Warn("session %s: close stale handle: %v", s.id, err)
		}
	}
	logger.Debug("session %s: reloaded %s (%d pages)", s.id, s.path, s.pageCount)
	return nil
}

// Close releases the handle unconditionally. Closing a closed session
// is a no-op.
func (s *Session) Close() {
	if s.doc == nil {
		return
	}
	if err := s.doc.Close(); err != nil {
		logger.Warn("session %s: close: %v", s.id, err)
	}
	logger.Debug("session %s: closed %s", s.id, s.path)
	s.doc = nil
	s.path = ""
	s.file = domain.FileInfo{}
	s.pageCount = 0
	s.index = 0
}

// IsOpen reports whether a document is loaded.
func (s *Session) IsOpen() bool {
	return s.doc != nil
}

// Document returns the open handle, or nil when closed.
func (s *Session) Document() driven.Document {
	return s.doc
}

// Path returns the path of the open document.
func (s *Session) Path() string {
	return s.path
}

// File returns display metadata for the open document's file.
func (s *Session) File() domain.FileInfo {
	return s.file
}

// PageCount returns the number of pages, 0 when closed.
func (s *Session) PageCount() int {
	return s.pageCount
}

// PageIndex returns the zero-based current page index.
func (s *Session) PageIndex() int {
	return s.index
}

// CurrentPage returns the 1-indexed page number for display, 0 when
// closed.
func (s *Session) CurrentPage() int {
	if !s.IsOpen() {
		return 0
	}
	return s.index + 1
}

// CanGoPrevious reports whether a previous page exists.
func (s *Session) CanGoPrevious() bool {
	return s.IsOpen() && s.index > 0
}

// CanGoNext reports whether a next page exists.
func (s *Session) CanGoNext() bool {
	return s.IsOpen() && s.index < s.pageCount-1
}

// GoToPrevious steps back one page. Returns false at the boundary or
// when closed.
func (s *Session) GoToPrevious() bool {
	if !s.CanGoPrevious() {
		return false
	}
	s.index--
	return true
}

// GoToNext advances one page. Returns false at the boundary or when
// closed.
func (s *Session) GoToNext() bool {
	if !s.CanGoNext() {
		return false
	}
	s.index++
	return true
}

// GoToFirst jumps to page 1. Returns false when already there or closed.
func (s *Session) GoToFirst() bool {
	if !s.IsOpen() || s.index == 0 {
		return false
	}
	s.index = 0
	return true
}

// GoToLast jumps to the final page. Returns false when already there
// or closed.
func (s *Session) GoToLast() bool {
	if !s.IsOpen() || s.index == s.pageCount-1 {
		return false
	}
	s.index = s.pageCount - 1
	return true
}

// GoTo jumps to a 1-indexed page number. Out-of-range numbers leave
// the index unchanged and return false.
func (s *Session) GoTo(pageNumber int) bool {
	if !s.IsOpen() || pageNumber < 1 || pageNumber > s.pageCount {
		return false
	}
	s.index = pageNumber - 1
	return true
}

// PageSize returns the native geometry of the current page. The zero
// PageSize is returned when closed or when the query fails; fit
// computations treat that as "geometry unavailable" and fail soft.
func (s *Session) PageSize() domain.PageSize {
	if !s.IsOpen() {
		return domain.PageSize{}
	}
	size, err := s.doc.PageSize(s.index)
	if err != nil {
		logger.Warn("session %s: page %d geometry: %v", s.id, s.index, err)
		return domain.PageSize{}
	}
	return size
}
