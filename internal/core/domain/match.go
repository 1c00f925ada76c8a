package domain

// Match is one text search hit on a page. Matches are produced by the
// document loader's per-page search, held transiently for highlight
// rendering, and cleared on the next search or on document close.
type Match struct {
	// PageIndex is the zero-based page the hit is on.
	PageIndex int

	// Box is the bounding box of the hit in page coordinates.
	Box Rect

	// Line is the zero-based line within the page's text layer.
	Line int

	// Text is the matched text as it appears on the page.
	Text string
}
