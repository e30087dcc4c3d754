package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BeforeMyCompileFails/PDFtoText/pkg/types"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain path", input: "scan.pdf\n", want: "scan.pdf"},
		{name: "surrounding whitespace", input: "  scan.pdf  \n", want: "scan.pdf"},
		{name: "double quoted", input: "\"/tmp/my scan.pdf\"\n", want: "/tmp/my scan.pdf"},
		{name: "single quoted", input: "'scan.pdf'\n", want: "scan.pdf"},
		{name: "last line without newline", input: "scan.pdf", want: "scan.pdf"},
		{name: "empty input", input: "\n", wantErr: true},
		{name: "no input at all", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Path(strings.NewReader(tt.input), &out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Path() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "path to your PDF") {
				t.Errorf("prompt text missing, got %q", out.String())
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.OutputFormat
		wantErr bool
	}{
		{name: "docx", input: "1\n", want: types.FormatDocx},
		{name: "text", input: "2\n", want: types.FormatText},
		{name: "both", input: "3\n", want: types.FormatBoth},
		{name: "choice with whitespace", input: " 3 \n", want: types.FormatBoth},
		{name: "invalid then valid", input: "x\n2\n", want: types.FormatText},
		{name: "attempts exhausted", input: "x\ny\nz\n", wantErr: true},
		{name: "input ends", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Format(strings.NewReader(tt.input), &out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
