// Package extract implements per-page text extraction with OCR fallback.
//
// Each page is first read through native text extraction. A page whose text
// is empty after trimming surrounding whitespace is rendered to a bitmap and
// handed to the OCR engine exactly once; the engine's output is used
// verbatim. There are no retries and no quality threshold beyond emptiness,
// and a failing page aborts the whole run.
package extract

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BeforeMyCompileFails/PDFtoText/internal/ocr"
	"github.com/BeforeMyCompileFails/PDFtoText/pkg/types"
)

// PageSource enumerates a document's pages and exposes the two per-page
// operations the fallback needs: native text and a rendered bitmap.
type PageSource interface {
	NumPages() int
	Text(i int) (string, error)
	RenderPNG(i int) ([]byte, error)
	DPI() int
}

// Options holds per-run extraction settings.
type Options struct {
	// Language is the OCR language hint passed to the engine.
	Language string
}

// Page extracts text from the page at index using the native-then-OCR
// fallback and reports which method produced the text.
func Page(ctx context.Context, src PageSource, engine ocr.Engine, index int, opts Options) (types.PageResult, error) {
	text, err := src.Text(index)
	if err != nil {
		return types.PageResult{}, err
	}
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		return types.PageResult{Index: index, Text: trimmed, Method: types.MethodNative}, nil
	}

	img, err := src.RenderPNG(index)
	if err != nil {
		return types.PageResult{}, err
	}
	out, err := engine.Recognize(ctx, ocr.Input{Image: img, Language: opts.Language, DPI: src.DPI()})
	if err != nil {
		return types.PageResult{}, fmt.Errorf("ocr on page %d: %w", index+1, err)
	}
	return types.PageResult{Index: index, Text: out, Method: types.MethodOCR}, nil
}

// Document runs the fallback over every page in document order, writing one
// status line per page to w. Any page failure aborts the run; there is no
// partial result.
func Document(ctx context.Context, src PageSource, engine ocr.Engine, source string, opts Options, w io.Writer) (types.DocumentResult, error) {
	n := src.NumPages()
	doc := types.DocumentResult{Source: source, Pages: make([]types.PageResult, 0, n)}
	for i := 0; i < n; i++ {
		page, err := Page(ctx, src, engine, i, opts)
		if err != nil {
			return types.DocumentResult{}, err
		}
		fmt.Fprintf(w, "%s: page %d/%d\n", page.Method, i+1, n)
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}
