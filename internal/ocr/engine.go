// Package ocr defines the OCR provider contract and the two engines the
// extraction fallback can use: the external tesseract process and the
// in-process gosseract bindings.
package ocr

import (
	"context"
	"fmt"

	"github.com/BeforeMyCompileFails/PDFtoText/pkg/types"
)

// Input encapsulates a single rendered page image submitted for recognition.
type Input struct {
	// Image is the PNG-encoded page bitmap.
	Image []byte

	// Language is the Tesseract trained-data name (e.g. "eng").
	Language string

	// DPI is the effective dots-per-inch of the image; zero means unknown.
	DPI int
}

// Engine is the OCR provider contract: one image in, recognized text out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (string, error)
}

// Availability is implemented by engines that can verify their backing
// runtime before a run starts.
type Availability interface {
	Available() error
}

// NewEngine constructs the engine registered under name. An empty name
// selects the tesseract engine.
func NewEngine(name types.OCREngine) (Engine, error) {
	switch name {
	case types.EngineTesseract, "":
		return NewTesseractEngine(), nil
	case types.EngineGosseract:
		return NewGosseractEngine(), nil
	}
	return nil, fmt.Errorf("unknown OCR engine %q (expected %s or %s)",
		name, types.EngineTesseract, types.EngineGosseract)
}

// UnavailableError reports that an OCR engine cannot be used, with
// installation guidance for the operator.
type UnavailableError struct {
	Engine string
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf(
		"OCR engine %s is not available: %v\ninstall Tesseract first: brew install tesseract (macOS) or sudo apt install tesseract-ocr (Debian/Ubuntu)",
		e.Engine, e.Err,
	)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
