// Package domain defines the core entities for Folio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ViewState: Zoom, rotation, fit mode, and viewport for the open document
//   - FitMode: Policy deriving zoom from page and viewport geometry
//   - Command: A user intent dispatched to the viewer controller
//   - RenderRequest: The tuple handed to the rasteriser for one refresh
//   - Match: A text search hit on a page
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
