package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/FitoDomik/pdf-to-docx/internal/convert"
	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
	"github.com/FitoDomik/pdf-to-docx/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert scanned PDFs or images into a .docx file",
	Long: `Convert recognizes text in the given PDFs and page images, rebuilds the
document structure and writes the result as a .docx file.

PDF inputs are expanded into their page images; multiple inputs are
concatenated in argument order.

Examples:
  scan2docx convert scan.pdf
  scan2docx convert scan.pdf -o out.docx --pages 1-5
  scan2docx convert page1.png page2.png -o pages.docx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	output := cfg.Output.File
	if output == "" {
		base := args[0]
		output = strings.TrimSuffix(base, filepath.Ext(base)) + ".docx"
	}

	engine, err := ocr.NewEngine(cfg.ToEngineConfig())
	if err != nil {
		return fmt.Errorf("initialize engine: %w", err)
	}
	defer func() { _ = engine.Close() }()

	quiet, _ := cmd.Flags().GetBool("quiet")
	opts := convert.Options{PageRange: cfg.Output.PageRange}
	if quiet {
		opts.Progress = pipeline.NewLogProgressCallback(slog.Default())
	} else {
		opts.Progress = pipeline.NewConsoleProgressCallback(os.Stderr, "Converting")
	}

	doc, err := convert.Run(cmd.Context(), args, output, engine, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d pages)\n", output, len(doc.Pages))
	return nil
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output .docx path (default: first input with .docx extension)")
	convertCmd.Flags().String("pages", "", "page range for PDF inputs (e.g. \"1-5\" or \"1,3,5\")")
	convertCmd.Flags().Bool("quiet", false, "suppress the progress bar, report progress through the log instead")

	_ = viper.BindPFlag("output.file", convertCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output.page_range", convertCmd.Flags().Lookup("pages"))

	rootCmd.AddCommand(convertCmd)
}
