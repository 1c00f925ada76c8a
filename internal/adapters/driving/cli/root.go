// Package cli implements the command-line interface for Folio.
// Commands receive their collaborators through the Set* functions so
// main stays the single place where adapters are wired together.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// version is stamped by the build; "dev" for local builds.
var version = "dev"

// Collaborators injected by main.
var (
	docLoader       driven.DocumentLoader
	fileValidator   driven.FileValidator
	changeWatcher   driven.ChangeWatcher
	settingsService driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A terminal PDF viewer",
	Long: `Folio is a PDF viewer for the terminal.

Open a document in the interactive viewer, inspect its metadata,
render pages to images, or search its text from the command line.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetDocumentLoader sets the loader used to open PDF files.
func SetDocumentLoader(loader driven.DocumentLoader) {
	docLoader = loader
}

// SetFileValidator sets the validator used to screen file paths.
func SetFileValidator(validator driven.FileValidator) {
	fileValidator = validator
}

// SetChangeWatcher sets the watcher used for auto reload in the viewer.
func SetChangeWatcher(watcher driven.ChangeWatcher) {
	changeWatcher = watcher
}

// SetSettingsService sets the settings service.
func SetSettingsService(service driving.SettingsService) {
	settingsService = service
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
