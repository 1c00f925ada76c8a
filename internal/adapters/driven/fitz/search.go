package fitz

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// searchText scans a page's text layer for query occurrences. Each hit
// gets an approximate bounding box: the page height is divided evenly
// across the text lines and the horizontal extent is estimated from
// rune offsets. Good enough for highlight placement in a cell grid.
func searchText(text, query string, caseSensitive bool, pageIndex int, size domain.PageSize) []domain.Match {
	if query == "" || text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	lineHeight := 0.0
	if !size.IsZero() && len(lines) > 0 {
		lineHeight = size.Height / float64(len(lines))
	}

	var matches []domain.Match
	for lineNo, line := range lines {
		from := 0
		for {
			start, end := indexFold(line[from:], query, caseSensitive)
			if start < 0 {
				break
			}
			start += from
			end += from

			match := domain.Match{
				PageIndex: pageIndex,
				Line:      lineNo,
				Text:      line[start:end],
			}
			if lineHeight > 0 && len(line) > 0 {
				// Horizontal extents count runes, not bytes, so
				// multi-byte characters do not skew the box.
				lineRunes := utf8.RuneCountInString(line)
				runeStart := utf8.RuneCountInString(line[:start])
				runeEnd := runeStart + utf8.RuneCountInString(line[start:end])
				charWidth := size.Width / float64(lineRunes)
				match.Box = domain.Rect{
					X0: float64(runeStart) * charWidth,
					Y0: float64(lineNo) * lineHeight,
					X1: float64(runeEnd) * charWidth,
					Y1: float64(lineNo+1) * lineHeight,
				}
			}
			matches = append(matches, match)

			from = end
		}
	}
	return matches
}

// indexFold locates the first occurrence of query in s and returns the
// byte offsets of its start and end, or (-1, -1). The case-insensitive
// comparison folds rune by rune, so both offsets always refer to s
// itself even where case mapping changes a rune's encoded length
// (lowercasing can grow a rune, e.g. U+023A, or shrink one, e.g.
// U+0130).
func indexFold(s, query string, caseSensitive bool) (int, int) {
	if caseSensitive {
		at := strings.Index(s, query)
		if at < 0 {
			return -1, -1
		}
		return at, at + len(query)
	}

	runes := []rune(query)
	for i := range s {
		if n, ok := foldPrefix(s[i:], runes); ok {
			return i, i + n
		}
	}
	return -1, -1
}

// foldPrefix reports whether s begins with the query runes under simple
// case folding, and the byte length of that prefix within s.
func foldPrefix(s string, query []rune) (int, bool) {
	n := 0
	for _, q := range query {
		r, width := utf8.DecodeRuneInString(s[n:])
		if width == 0 {
			return 0, false
		}
		if r != q && unicode.ToLower(r) != unicode.ToLower(q) {
			return 0, false
		}
		n += width
	}
	return n, true
}
