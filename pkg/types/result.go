package types

import (
	"strings"
	"unicode/utf8"
)

// Method identifies how a page's text was obtained.
type Method string

const (
	// MethodNative means the text was read directly from the PDF content
	// stream, without image analysis.
	MethodNative Method = "native"

	// MethodOCR means the page was rasterized and the text recognized from
	// the bitmap.
	MethodOCR Method = "ocr"
)

// PageResult holds the per-page outcome of the extraction fallback.
type PageResult struct {
	// Index is the zero-based page index within the document.
	Index int `json:"index" yaml:"index"`

	// Text is the extracted text, possibly empty.
	Text string `json:"text" yaml:"text"`

	// Method records which extraction path produced Text.
	Method Method `json:"method" yaml:"method"`
}

// DocumentResult is the ordered sequence of page results for one run.
// It is built once per run, append-only, in document page order.
type DocumentResult struct {
	// Source is the path of the input PDF.
	Source string `json:"source" yaml:"source"`

	// Pages holds one result per page, ordered by Index.
	Pages []PageResult `json:"pages" yaml:"pages"`
}

// PageCount returns the number of pages in the result.
func (d DocumentResult) PageCount() int { return len(d.Pages) }

// CharCount returns the total number of characters extracted across all pages.
func (d DocumentResult) CharCount() int {
	total := 0
	for _, p := range d.Pages {
		total += utf8.RuneCountInString(p.Text)
	}
	return total
}

// Empty reports whether no page yielded any non-whitespace text.
func (d DocumentResult) Empty() bool {
	for _, p := range d.Pages {
		if strings.TrimSpace(p.Text) != "" {
			return false
		}
	}
	return true
}
