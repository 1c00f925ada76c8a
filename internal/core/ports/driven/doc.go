// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the viewer to function:
//
//   - DocumentLoader: Opens PDF files and hands back Document handles
//   - Document: Page count, geometry, rasterisation, text, per-page search
//   - FileValidator: Cheap pre-load checks (existence, extension, magic bytes)
//   - ConfigStore: Viewer preferences
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ChangeWatcher: Reload ticks when the open file changes on disk.
//     Without it, documents are simply not auto-reloaded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
