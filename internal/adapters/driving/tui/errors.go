package tui

import "errors"

// ErrMissingViewerService is returned when the viewer service is not provided.
var ErrMissingViewerService = errors.New("tui: viewer service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
