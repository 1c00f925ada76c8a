package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage viewer settings",
	Long: `View and configure viewer preferences: the default fit mode, zoom
step, fit margin, page placement, search case sensitivity, and file
watching.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting and persist it.

Available keys:
  fit-mode        width | height | page | actual
  zoom-step       multiplier applied by zoom in/out, greater than 1.0
  margin          fit margin per side in pixels
  placement       centered | top-left
  case-sensitive  true | false
  watch           true | false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[View]")
	cmd.Printf("  Fit mode: %s\n", settings.DefaultFitMode.Description())
	cmd.Printf("  Zoom step: %.2f\n", settings.ZoomStep)
	cmd.Printf("  Margin: %d px\n", settings.Margin)
	cmd.Printf("  Placement: %s\n", settings.Placement)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Case sensitive: %v\n", settings.CaseSensitiveSearch)
	cmd.Println()

	cmd.Println("[Files]")
	cmd.Printf("  Watch for changes: %v\n", settings.WatchFiles)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	key, value := args[0], args[1]

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := applySetting(settings, key, value); err != nil {
		return err
	}
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}

func applySetting(settings *driving.ViewerSettings, key, value string) error {
	switch key {
	case "fit-mode":
		settings.DefaultFitMode = domain.FitMode(value)
	case "zoom-step":
		step, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid zoom step %q: %w", value, err)
		}
		settings.ZoomStep = step
	case "margin":
		margin, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid margin %q: %w", value, err)
		}
		settings.Margin = margin
	case "placement":
		settings.Placement = domain.Placement(value)
	case "case-sensitive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		settings.CaseSensitiveSearch = b
	case "watch":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		settings.WatchFiles = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
