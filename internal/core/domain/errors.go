package domain

import "errors"

// Domain errors represent viewer-level failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidFormat indicates a file failed the PDF signature check
	// before a load was even attempted.
	ErrInvalidFormat = errors.New("not a PDF file")

	// ErrUnreadable indicates the document loader rejected the file.
	ErrUnreadable = errors.New("document unreadable")

	// ErrNoDocument indicates an operation that needs an open document
	// was invoked on a closed session.
	ErrNoDocument = errors.New("no document open")

	// ErrPageOutOfRange indicates an explicit go-to-page outside [1, pageCount].
	ErrPageOutOfRange = errors.New("page number out of range")

	// ErrInvalidFitMode indicates an unrecognised fit mode value.
	ErrInvalidFitMode = errors.New("invalid fit mode")

	// ErrNoQuery indicates a search was requested with an empty query.
	ErrNoQuery = errors.New("empty search query")
)
