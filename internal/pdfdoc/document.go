// Package pdfdoc wraps the MuPDF bindings behind the small page-level
// surface the extraction pipeline needs: page enumeration, native text
// extraction, and rasterization.
package pdfdoc

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// baseDPI is the PDF user-space resolution; rendering at baseDPI reproduces
// the page at 1x.
const baseDPI = 72

// DefaultScale is the linear upscaling factor applied when rendering a page
// for OCR. 2x raises recognition accuracy on low-resolution scans.
const DefaultScale = 2.0

// Document is an open PDF file. Pages are addressed by zero-based index.
type Document struct {
	doc   *fitz.Document
	scale float64
}

// Open opens the PDF at path. Pages rendered for OCR are scaled by the given
// linear factor; a non-positive scale falls back to DefaultScale.
func Open(path string, scale float64) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return newDocument(doc, scale), nil
}

func newDocument(doc *fitz.Document, scale float64) *Document {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Document{doc: doc, scale: scale}
}

// Close releases the underlying document.
func (d *Document) Close() error {
	return d.doc.Close()
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.doc.NumPage()
}

// Text returns the embedded text of page i, without image analysis.
func (d *Document) Text(i int) (string, error) {
	text, err := d.doc.Text(i)
	if err != nil {
		return "", fmt.Errorf("reading text of page %d: %w", i+1, err)
	}
	return text, nil
}

// DPI returns the render resolution implied by the configured scale.
func (d *Document) DPI() int {
	return int(baseDPI * d.scale)
}

// Render rasterizes page i at the configured scale.
func (d *Document) Render(i int) (image.Image, error) {
	img, err := d.doc.ImageDPI(i, float64(d.DPI()))
	if err != nil {
		return nil, fmt.Errorf("rendering page %d: %w", i+1, err)
	}
	return img, nil
}

// RenderPNG rasterizes page i and returns the bitmap as encoded PNG.
func (d *Document) RenderPNG(i int) ([]byte, error) {
	img, err := d.Render(i)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding page %d: %w", i+1, err)
	}
	return buf.Bytes(), nil
}

// Metadata returns the document information dictionary (title, author, ...).
func (d *Document) Metadata() map[string]string {
	return d.doc.Metadata()
}
