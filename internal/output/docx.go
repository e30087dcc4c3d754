package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"

	"github.com/BeforeMyCompileFails/PDFtoText/pkg/types"
)

// docxDefaultTitle is the heading used when the document has no title of
// its own.
const docxDefaultTitle = "Extracted PDF Text"

// WriteDocx serializes doc as a Word document: a title heading (the PDF's
// metadata title, or a default), then per page a separator paragraph
// followed by one paragraph per non-blank line.
func WriteDocx(w io.Writer, doc types.DocumentResult, title string) error {
	if strings.TrimSpace(title) == "" {
		title = docxDefaultTitle
	}
	d := docx.New().WithDefaultTheme()

	d.AddParagraph().AddText(title).Size("32")

	for _, p := range doc.Pages {
		d.AddParagraph().AddText(pageSeparator(p.Index + 1))
		for _, line := range strings.Split(p.Text, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			d.AddParagraph().AddText(line)
		}
	}

	if _, err := d.WriteTo(w); err != nil {
		return fmt.Errorf("writing docx: %w", err)
	}
	return nil
}

// SaveDocx writes the Word-document serialization of doc to path, all or
// nothing.
func SaveDocx(path string, doc types.DocumentResult, title string) error {
	var buf bytes.Buffer
	if err := WriteDocx(&buf, doc, title); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
