// Package output serializes a document result to its output files: a plain
// text file, a Word document, and an optional YAML run report.
package output

import (
	"path/filepath"
	"strings"
)

const (
	textSuffix   = "_extracted.txt"
	docxSuffix   = "_extracted.docx"
	reportSuffix = "_extracted.report.yaml"
)

// Paths holds the output file locations derived from an input PDF path.
type Paths struct {
	Text   string
	Docx   string
	Report string
}

// Derive computes the output locations for inputPath: the input's base name
// with a fixed suffix, in the input's directory.
func Derive(inputPath string) Paths {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return Paths{
		Text:   base + textSuffix,
		Docx:   base + docxSuffix,
		Report: base + reportSuffix,
	}
}
