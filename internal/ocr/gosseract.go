package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// GosseractEngine recognizes text in-process through the gosseract Tesseract
// bindings. A fresh client is created per page and closed afterwards.
type GosseractEngine struct {
	clientFactory func() *gosseract.Client
}

// NewGosseractEngine constructs the in-process engine.
func NewGosseractEngine() *GosseractEngine {
	return &GosseractEngine{clientFactory: gosseract.NewClient}
}

func (e *GosseractEngine) Name() string { return "gosseract" }

// Available verifies that trained language data can be enumerated.
func (e *GosseractEngine) Available() error {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return &UnavailableError{Engine: e.Name(), Err: err}
	}
	if len(langs) == 0 {
		return &UnavailableError{Engine: e.Name(), Err: errors.New("no trained language data found")}
	}
	return nil
}

// Recognize performs OCR on a single page image.
func (e *GosseractEngine) Recognize(ctx context.Context, in Input) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if in.Language != "" {
		if err := c.SetLanguage(in.Language); err != nil {
			return "", fmt.Errorf("set language %s: %w", in.Language, err)
		}
	}
	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
