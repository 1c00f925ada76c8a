// Package file provides the file-based implementation of the config
// store port. Preferences are persisted as TOML on the local filesystem.
package file
