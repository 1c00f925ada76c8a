package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
	"github.com/folio-labs/folio-cli/internal/core/services"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a document in the interactive viewer",
	Long: `Open a document in the interactive terminal viewer. With no file
argument a file picker is shown.

Controls:
  ←/h, →/l     - Previous / next page
  ↑/k, ↓/j     - Scroll within the page
  g, G         - First / last page
  :            - Go to page
  +, -         - Zoom in / out
  0            - Reset zoom to 100%
  w, e, f, a   - Fit width / height / page / actual size
  r, R         - Rotate clockwise / counter-clockwise
  /            - Search current page
  o            - Open another file
  q            - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	// Stack traces from UI panics are otherwise swallowed by the
	// alternate screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in viewer: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if docLoader == nil {
		return errors.New("document loader not configured")
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the viewer needs an interactive terminal; use 'folio render' or 'folio info' in scripts")
	}

	settings := driving.DefaultViewerSettings()
	if settingsService != nil {
		loaded, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		settings = loaded
	}

	viewer := services.NewViewerService(docLoader, fileValidator, settings)
	defer viewer.Close()

	ports := &tui.Ports{
		Viewer:   viewer,
		Settings: settingsService,
		Watcher:  changeWatcher,
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	app, err := tui.NewApp(ports, path, settings)
	if err != nil {
		return fmt.Errorf("failed to create viewer: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}

	return nil
}
