package ocr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

const binTesseract = "tesseract"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

var defaultExec executor = &osExecutor{}

// TesseractEngine recognizes text by running the tesseract binary as an
// external process, one blocking invocation per page image. The image is
// piped on stdin and the recognized text read from stdout.
type TesseractEngine struct {
	bin  string
	exec executor
}

// NewTesseractEngine constructs the external-process engine.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{bin: binTesseract, exec: defaultExec}
}

func (e *TesseractEngine) Name() string { return e.bin }

// Available reports whether the tesseract binary exists on PATH and responds
// to a version query. The returned error carries installation guidance.
func (e *TesseractEngine) Available() error {
	if _, err := e.exec.LookPath(e.bin); err != nil {
		return &UnavailableError{Engine: e.bin, Err: err}
	}
	if err := e.exec.RunSilent(e.bin, "--version"); err != nil {
		return &UnavailableError{Engine: e.bin, Err: fmt.Errorf("%s --version: %w", e.bin, err)}
	}
	return nil
}

// Recognize runs one tesseract invocation over the input image. There is no
// timeout; the call blocks until the process exits.
func (e *TesseractEngine) Recognize(ctx context.Context, in Input) (string, error) {
	args := []string{"stdin", "stdout"}
	if in.Language != "" {
		args = append(args, "-l", in.Language)
	}
	if in.DPI > 0 {
		args = append(args, "--dpi", strconv.Itoa(in.DPI))
	}

	var out bytes.Buffer
	if err := e.exec.RunPiped(ctx, e.bin, args, bytes.NewReader(in.Image), &out); err != nil {
		return "", fmt.Errorf("running %s: %w", e.bin, err)
	}
	return strings.TrimSpace(out.String()), nil
}
