package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BeforeMyCompileFails/PDFtoText/internal/extract"
	"github.com/BeforeMyCompileFails/PDFtoText/internal/ocr"
	"github.com/BeforeMyCompileFails/PDFtoText/internal/output"
	"github.com/BeforeMyCompileFails/PDFtoText/internal/pdfdoc"
	"github.com/BeforeMyCompileFails/PDFtoText/internal/prompt"
	"github.com/BeforeMyCompileFails/PDFtoText/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [pdf]",
	Short: "Extract text from a PDF, using OCR for pages without embedded text",
	Long: `Extract reads each page of the given PDF. Pages with embedded text are
read natively; pages without any are rendered at an upscaled resolution and
recognized through the configured OCR engine. The result is written next to
the input file as <name>_extracted.txt, <name>_extracted.docx, or both.

Without a path argument the path is asked interactively; without --format
the output format is asked after extraction.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("format", "", "output format: docx, text, or both (default: ask)")
	extractCmd.Flags().String("ocr-engine", string(types.EngineTesseract), "OCR engine: tesseract (external process) or gosseract (in-process)")
	extractCmd.Flags().String("lang", "eng", "OCR language (Tesseract trained data name)")
	extractCmd.Flags().Float64("scale", pdfdoc.DefaultScale, "linear upscaling factor for page rendering before OCR")
	extractCmd.Flags().Bool("report", false, "also write a YAML run report next to the outputs")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	stdin := cmd.InOrStdin()
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg := types.ExtractionConfig{
		OCR: types.OCRConfig{
			Engine:   types.OCREngine(stringSetting(cmd, "ocr-engine", "ocr.engine", string(types.EngineTesseract))),
			Language: stringSetting(cmd, "lang", "ocr.language", "eng"),
			Scale:    floatSetting(cmd, "scale", "ocr.scale", pdfdoc.DefaultScale),
		},
		Output: types.OutputConfig{
			Format: types.OutputFormat(stringSetting(cmd, "format", "output.format", "")),
			Report: boolSetting(cmd, "report", "output.report", false),
		},
	}
	if cfg.Output.Format != "" && !cfg.Output.Format.Valid() {
		return fmt.Errorf("unknown output format %q (expected %s, %s, or %s)",
			cfg.Output.Format, types.FormatDocx, types.FormatText, types.FormatBoth)
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		var err error
		path, err = prompt.Path(stdin, stdout)
		if err != nil {
			return err
		}
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("input file %s: %w", path, err)
	}

	engine, err := ocr.NewEngine(cfg.OCR.Engine)
	if err != nil {
		return err
	}
	if a, ok := engine.(ocr.Availability); ok {
		if err := a.Available(); err != nil {
			return err
		}
	}

	doc, err := pdfdoc.Open(path, cfg.OCR.Scale)
	if err != nil {
		return err
	}
	defer doc.Close()

	fmt.Fprintf(stderr, "Processing %s (%d pages)\n", path, doc.NumPages())
	title := doc.Metadata()["title"]

	result, err := extract.Document(cmd.Context(), doc, engine, path,
		extract.Options{Language: cfg.OCR.Language}, stderr)
	if err != nil {
		return err
	}
	if result.Empty() {
		return fmt.Errorf("no text could be extracted from %s", path)
	}

	format := cfg.Output.Format
	if format == "" {
		format, err = prompt.Format(stdin, stdout)
		if err != nil {
			return err
		}
	}

	paths := output.Derive(path)
	if err := writeOutputs(format, paths, result, title, stdout); err != nil {
		return err
	}
	if cfg.Output.Report {
		if err := output.SaveReport(paths.Report, result); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Saved %s\n", paths.Report)
	}

	fmt.Fprintf(stdout, "Extracted %d characters from %d pages\n", result.CharCount(), result.PageCount())
	return nil
}

// writeOutputs saves the output files selected by format, printing one line
// per file written.
func writeOutputs(format types.OutputFormat, paths output.Paths, doc types.DocumentResult, title string, w io.Writer) error {
	if format == types.FormatDocx || format == types.FormatBoth {
		if err := output.SaveDocx(paths.Docx, doc, title); err != nil {
			return err
		}
		fmt.Fprintf(w, "Saved %s\n", paths.Docx)
	}
	if format == types.FormatText || format == types.FormatBoth {
		if err := output.SaveText(paths.Text, doc); err != nil {
			return err
		}
		fmt.Fprintf(w, "Saved %s\n", paths.Text)
	}
	return nil
}

// stringSetting resolves a setting: an explicitly set flag wins, then the
// viper key (config file or environment), then the fallback.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func floatSetting(cmd *cobra.Command, flag, key string, fallback float64) float64 {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetFloat64(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	return fallback
}

func boolSetting(cmd *cobra.Command, flag, key string, fallback bool) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return fallback
}
