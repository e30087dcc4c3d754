package output

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/BeforeMyCompileFails/PDFtoText/pkg/types"
)

// Report summarizes one extraction run in machine-readable form.
type Report struct {
	// Source is the input PDF path.
	Source string `yaml:"source"`

	// PageCount is the number of pages processed.
	PageCount int `yaml:"page_count"`

	// NativePages counts pages read through native text extraction.
	NativePages int `yaml:"native_pages"`

	// OCRPages counts pages that went through the OCR fallback.
	OCRPages int `yaml:"ocr_pages"`

	// Characters is the total number of characters extracted.
	Characters int `yaml:"characters"`

	// Pages details each page in document order.
	Pages []PageReport `yaml:"pages"`
}

// PageReport details one page of the run.
type PageReport struct {
	// Page is the 1-based page number.
	Page int `yaml:"page"`

	// Method records which extraction path produced the text.
	Method types.Method `yaml:"method"`

	// Characters is the number of characters extracted from the page.
	Characters int `yaml:"characters"`
}

// BuildReport derives the run report from a document result.
func BuildReport(doc types.DocumentResult) Report {
	r := Report{
		Source:     doc.Source,
		PageCount:  doc.PageCount(),
		Characters: doc.CharCount(),
		Pages:      make([]PageReport, 0, len(doc.Pages)),
	}
	for _, p := range doc.Pages {
		switch p.Method {
		case types.MethodNative:
			r.NativePages++
		case types.MethodOCR:
			r.OCRPages++
		}
		r.Pages = append(r.Pages, PageReport{
			Page:       p.Index + 1,
			Method:     p.Method,
			Characters: utf8.RuneCountInString(p.Text),
		})
	}
	return r
}

// SaveReport writes the YAML run report for doc to path.
func SaveReport(path string, doc types.DocumentResult) error {
	data, err := yaml.Marshal(BuildReport(doc))
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
