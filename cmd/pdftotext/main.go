// Package main is the entry point for the pdftotext CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdftotext CLI.
var rootCmd = &cobra.Command{
	Use:   "pdftotext",
	Short: "Extract text from PDF files, with OCR fallback for scanned pages",
	Long: `pdftotext extracts the text of a PDF document. Pages with embedded
selectable text are read directly; pages without any (scanned or image-only
pages) are rendered and run through an OCR engine. The combined text is
written next to the input file as a plain text file, a Word document, or
both.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdftotext.yaml or ~/.config/pdftotext/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdftotext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdftotext"))
		}
	}

	viper.SetEnvPrefix("PDFTOTEXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
