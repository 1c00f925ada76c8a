// Command folio is a terminal PDF viewer.
package main

import (
	"fmt"
	"os"

	fileconfig "github.com/folio-labs/folio-cli/internal/adapters/driven/config/file"
	"github.com/folio-labs/folio-cli/internal/adapters/driven/fitz"
	"github.com/folio-labs/folio-cli/internal/adapters/driven/fsdoc"
	"github.com/folio-labs/folio-cli/internal/adapters/driven/watch"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/cli"
	"github.com/folio-labs/folio-cli/internal/core/services"
)

// version is overridden at build time with -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the adapters into the CLI and executes it.
func run() error {
	configStore, err := fileconfig.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to initialise config store: %w", err)
	}

	cli.SetVersion(version)
	cli.SetDocumentLoader(fitz.NewLoader())
	cli.SetFileValidator(fsdoc.NewValidator())
	cli.SetChangeWatcher(watch.NewWatcher())
	cli.SetSettingsService(services.NewSettingsService(configStore))

	return cli.Execute()
}
