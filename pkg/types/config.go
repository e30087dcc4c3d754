package types

// OCREngine identifies the OCR backend.
type OCREngine string

const (
	// EngineTesseract runs the tesseract binary as an external process.
	EngineTesseract OCREngine = "tesseract"

	// EngineGosseract recognizes in-process through the gosseract bindings.
	EngineGosseract OCREngine = "gosseract"
)

// OutputFormat selects which output files a run writes.
type OutputFormat string

const (
	FormatDocx OutputFormat = "docx"
	FormatText OutputFormat = "text"
	FormatBoth OutputFormat = "both"
)

// Valid reports whether f is a recognized output format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatDocx, FormatText, FormatBoth:
		return true
	}
	return false
}

// OCRConfig holds settings for the OCR fallback path.
type OCRConfig struct {
	// Engine selects the OCR backend: tesseract or gosseract.
	Engine OCREngine `json:"engine" yaml:"engine"`

	// Language is the Tesseract trained-data name (default "eng").
	Language string `json:"language" yaml:"language"`

	// Scale is the linear upscaling factor applied when rendering a page
	// before OCR (default 2.0).
	Scale float64 `json:"scale" yaml:"scale"`
}

// OutputConfig holds settings for output serialization.
type OutputConfig struct {
	// Format selects the output files to write: docx, text, or both.
	// Empty means ask interactively after extraction.
	Format OutputFormat `json:"format,omitempty" yaml:"format,omitempty"`

	// Report controls whether a YAML run report is written next to the
	// output files.
	Report bool `json:"report" yaml:"report"`
}

// ExtractionConfig groups all settings for one extraction run.
type ExtractionConfig struct {
	OCR    OCRConfig    `json:"ocr" yaml:"ocr"`
	Output OutputConfig `json:"output" yaml:"output"`
}
