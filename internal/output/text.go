package output

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/BeforeMyCompileFails/PDFtoText/pkg/types"
)

// pageSeparator formats the separator line preceding page n (1-based).
func pageSeparator(n int) string {
	return fmt.Sprintf("--- Page %d ---", n)
}

var pageSeparatorRe = regexp.MustCompile(`^--- Page (\d+) ---$`)

// WriteText serializes doc as plain text: one separator line, the page body,
// and a blank line per page.
func WriteText(w io.Writer, doc types.DocumentResult) error {
	var b strings.Builder
	for _, p := range doc.Pages {
		b.WriteString(pageSeparator(p.Index + 1))
		b.WriteByte('\n')
		b.WriteString(p.Text)
		b.WriteString("\n\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// SaveText writes the plain-text serialization of doc to path. The file is
// written in one shot; a failed run leaves no partial output behind.
func SaveText(path string, doc types.DocumentResult) error {
	var buf bytes.Buffer
	if err := WriteText(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadText parses text written by WriteText back into the per-page text
// blocks, in order. Non-blank content before the first separator is an error.
//
// The format does not escape page bodies: a body line that itself matches
// the separator pattern is indistinguishable from a page boundary and starts
// a new page. Round-tripping is exact only for pages whose text contains no
// such line.
func ReadText(r io.Reader) ([]string, error) {
	var pages []string
	var current []string
	started := false

	flush := func() {
		// Drop the trailing blank lines the writer appends after each body.
		for len(current) > 0 && current[len(current)-1] == "" {
			current = current[:len(current)-1]
		}
		pages = append(pages, strings.Join(current, "\n"))
		current = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if pageSeparatorRe.MatchString(line) {
			if started {
				flush()
			}
			started = true
			continue
		}
		if !started {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return nil, fmt.Errorf("unexpected content before first page separator: %q", line)
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}
	if started {
		flush()
	}
	return pages, nil
}
