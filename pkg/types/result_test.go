package types

import "testing"

func TestDocumentResultCounts(t *testing.T) {
	doc := DocumentResult{
		Source: "scan.pdf",
		Pages: []PageResult{
			{Index: 0, Text: "Hello", Method: MethodNative},
			{Index: 1, Text: "Scan text", Method: MethodOCR},
			{Index: 2, Text: "", Method: MethodOCR},
		},
	}

	if got := doc.PageCount(); got != 3 {
		t.Errorf("PageCount() = %d, want 3", got)
	}
	if got := doc.CharCount(); got != 14 {
		t.Errorf("CharCount() = %d, want 14", got)
	}
	if doc.Empty() {
		t.Error("Empty() = true for document with text")
	}
}

func TestDocumentResultEmpty(t *testing.T) {
	tests := []struct {
		name  string
		pages []PageResult
		want  bool
	}{
		{name: "no pages", pages: nil, want: true},
		{name: "whitespace only", pages: []PageResult{{Text: "  \n\t "}}, want: true},
		{name: "one page with text", pages: []PageResult{{Text: ""}, {Text: "x"}}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := DocumentResult{Pages: tt.pages}
			if got := doc.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutputFormatValid(t *testing.T) {
	for _, f := range []OutputFormat{FormatDocx, FormatText, FormatBoth} {
		if !f.Valid() {
			t.Errorf("Valid() = false for %q", f)
		}
	}
	for _, f := range []OutputFormat{"", "pdf", "TEXT"} {
		if f.Valid() {
			t.Errorf("Valid() = true for %q", f)
		}
	}
}
