// Package prompt implements the interactive portions of the CLI. Readers and
// writers are injected so the flows are testable without a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/BeforeMyCompileFails/PDFtoText/pkg/types"
)

// maxAttempts bounds how often an invalid menu choice is re-asked.
const maxAttempts = 3

// Path asks the user for the input PDF path. Surrounding whitespace and
// quotes (shells and file managers paste paths quoted) are stripped.
func Path(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter the path to your PDF file: ")
	line, err := readLine(r)
	if err != nil {
		return "", fmt.Errorf("reading path: %w", err)
	}
	path := strings.Trim(strings.TrimSpace(line), `"'`)
	if path == "" {
		return "", fmt.Errorf("no path entered")
	}
	return path, nil
}

// Format shows the output menu and returns the chosen format. Invalid input
// is re-asked a bounded number of times before giving up.
func Format(r io.Reader, w io.Writer) (types.OutputFormat, error) {
	br := bufio.NewReader(r)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintln(w, "Choose output format:")
		fmt.Fprintln(w, "  1. Word document (.docx)")
		fmt.Fprintln(w, "  2. Plain text file (.txt)")
		fmt.Fprintln(w, "  3. Both")
		fmt.Fprint(w, "Enter your choice (1-3): ")

		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading choice: %w", err)
		}
		switch strings.TrimSpace(line) {
		case "1":
			return types.FormatDocx, nil
		case "2":
			return types.FormatText, nil
		case "3":
			return types.FormatBoth, nil
		}
		fmt.Fprintln(w, "Invalid choice, enter 1, 2 or 3.")
	}
	return "", fmt.Errorf("no valid choice after %d attempts", maxAttempts)
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}
