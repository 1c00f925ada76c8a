package cli

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

var (
	renderPage   int
	renderZoom   float64
	renderRotate int
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a page to a PNG image",
	Long: `Rasterises one page of a document and writes it as a PNG file.

The zoom factor scales the output resolution: 1.0 renders at 72 DPI,
2.0 at 144 DPI, and so on. Rotation must be a multiple of 90 degrees.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVarP(&renderPage, "page", "p", 1, "page number to render")
	renderCmd.Flags().Float64VarP(&renderZoom, "zoom", "z", 1.0, "zoom factor")
	renderCmd.Flags().IntVarP(&renderRotate, "rotate", "r", 0, "rotation in degrees")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default <file>-p<page>.png)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if docLoader == nil {
		return errors.New("document loader not configured")
	}
	path := args[0]

	if renderRotate%90 != 0 {
		return fmt.Errorf("rotation must be a multiple of 90, got %d", renderRotate)
	}
	if fileValidator != nil && !fileValidator.LooksLikePDF(path) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidFormat, path)
	}

	doc, err := docLoader.Open(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnreadable, err)
	}
	defer doc.Close()

	if renderPage < 1 || renderPage > doc.PageCount() {
		return fmt.Errorf("%w: %d (document has %d pages)",
			domain.ErrPageOutOfRange, renderPage, doc.PageCount())
	}

	img, err := doc.RenderPage(cmd.Context(), renderPage-1, renderZoom, renderRotate)
	if err != nil {
		return fmt.Errorf("render page %d: %w", renderPage, err)
	}

	output := renderOutput
	if output == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		output = fmt.Sprintf("%s-p%d.png", base, renderPage)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}

	bounds := img.Bounds()
	cmd.Printf("Wrote %s (%dx%d px)\n", output, bounds.Dx(), bounds.Dy())
	return nil
}
