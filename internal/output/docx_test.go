package output

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

// readDocxBody opens a .docx as the zip archive it is and returns the
// contents of word/document.xml.
func readDocxBody(t *testing.T, path string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening docx archive: %v", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening document.xml: %v", err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading document.xml: %v", err)
		}
		return string(data)
	}
	t.Fatal("word/document.xml not found in docx archive")
	return ""
}

func TestSaveDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	if err := SaveDocx(path, sampleDoc(), ""); err != nil {
		t.Fatalf("SaveDocx() error = %v", err)
	}

	body := readDocxBody(t, path)
	wantInOrder := []string{"Extracted PDF Text", "Hello", "Scan text", "World"}
	pos := 0
	for _, want := range wantInOrder {
		idx := strings.Index(body[pos:], want)
		if idx < 0 {
			t.Fatalf("document.xml missing %q after position %d", want, pos)
		}
		pos += idx + len(want)
	}
}

func TestSaveDocxTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantTitle string
	}{
		{name: "metadata title used as heading", title: "Quarterly Report", wantTitle: "Quarterly Report"},
		{name: "empty title falls back to default", title: "", wantTitle: "Extracted PDF Text"},
		{name: "whitespace title falls back to default", title: "  \t ", wantTitle: "Extracted PDF Text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.docx")
			if err := SaveDocx(path, sampleDoc(), tt.title); err != nil {
				t.Fatalf("SaveDocx() error = %v", err)
			}
			body := readDocxBody(t, path)
			if !strings.Contains(body, tt.wantTitle) {
				t.Errorf("document.xml missing heading %q", tt.wantTitle)
			}
		})
	}
}
