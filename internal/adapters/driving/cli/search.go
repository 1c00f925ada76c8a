package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

var (
	searchPage          int
	searchCaseSensitive bool
	searchJSON          bool
)

var searchCmd = &cobra.Command{
	Use:   "search [file] [query]",
	Short: "Search a document's text",
	Long: `Searches the text layer of a document and prints every match with
its page number. By default all pages are searched; use --page to
restrict the search to a single page.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 0, "search a single page (0 = all pages)")
	searchCmd.Flags().BoolVarP(&searchCaseSensitive, "case-sensitive", "c", false, "match case exactly")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if docLoader == nil {
		return errors.New("document loader not configured")
	}
	path, query := args[0], args[1]

	if strings.TrimSpace(query) == "" {
		return domain.ErrNoQuery
	}
	if fileValidator != nil && !fileValidator.LooksLikePDF(path) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidFormat, path)
	}

	doc, err := docLoader.Open(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnreadable, err)
	}
	defer doc.Close()

	first, last := 0, doc.PageCount()-1
	if searchPage > 0 {
		if searchPage > doc.PageCount() {
			return fmt.Errorf("%w: %d (document has %d pages)",
				domain.ErrPageOutOfRange, searchPage, doc.PageCount())
		}
		first, last = searchPage-1, searchPage-1
	}

	var matches []domain.Match
	for i := first; i <= last; i++ {
		pageMatches, err := doc.SearchPage(cmd.Context(), i, query, searchCaseSensitive)
		if err != nil {
			return fmt.Errorf("search page %d: %w", i+1, err)
		}
		matches = append(matches, pageMatches...)
	}

	if searchJSON {
		return outputSearchJSON(cmd, matches)
	}
	outputSearchText(cmd, query, matches)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, matches []domain.Match) error {
	if matches == nil {
		matches = []domain.Match{}
	}
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, query string, matches []domain.Match) {
	if len(matches) == 0 {
		cmd.Printf("No matches for %q.\n", query)
		return
	}

	cmd.Printf("%d matches for %q:\n\n", len(matches), query)
	for i := range matches {
		cmd.Printf("  page %d, line %d: %s\n",
			matches[i].PageIndex+1, matches[i].Line+1, matches[i].Text)
	}
}
