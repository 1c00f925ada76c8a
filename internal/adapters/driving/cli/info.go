package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
	"github.com/folio-labs/folio-cli/internal/core/services"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show document metadata",
	Long: `Prints page count, page geometry, file details, and the document
information dictionary (title, author, producer, and so on).`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if docLoader == nil {
		return errors.New("document loader not configured")
	}

	info, err := services.Inspect(cmd.Context(), docLoader, fileValidator, args[0])
	if err != nil {
		return err
	}

	if infoJSON {
		return outputInfoJSON(cmd, info)
	}
	outputInfoText(cmd, info)
	return nil
}

func outputInfoJSON(cmd *cobra.Command, info *driving.DocumentInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal info: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputInfoText(cmd *cobra.Command, info *driving.DocumentInfo) {
	cmd.Printf("File:       %s\n", info.File.Name)
	if info.File.Size > 0 {
		cmd.Printf("Size:       %.2f MB\n", info.File.SizeMB())
	}
	cmd.Printf("Pages:      %d\n", info.PageCount)
	if !info.FirstPage.IsZero() {
		cmd.Printf("Page size:  %.0f x %.0f pt\n", info.FirstPage.Width, info.FirstPage.Height)
	}

	if len(info.Metadata) == 0 {
		return
	}
	cmd.Println()
	keys := make([]string, 0, len(info.Metadata))
	for k := range info.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if info.Metadata[k] == "" {
			continue
		}
		cmd.Printf("%-11s %s\n", k+":", info.Metadata[k])
	}
}
