package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FitoDomik/pdf-to-docx/internal/pdf"
	"github.com/FitoDomik/pdf-to-docx/internal/utils"
	"github.com/spf13/cobra"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf [pdf file]",
	Short: "Extract vector text from a born-digital PDF",
	Long: `Pdf extracts the embedded text of a born-digital PDF without running
recognition. Scanned PDFs have no vector text; convert handles those
through the recognition pipeline.

Examples:
  scan2docx pdf report.pdf
  scan2docx pdf report.pdf --format json
  scan2docx pdf report.pdf --extract-images ./images`,
	Args: cobra.ExactArgs(1),
	RunE: runPdf,
}

func runPdf(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !utils.IsPDF(path) {
		return fmt.Errorf("not a PDF file: %s", path)
	}

	if imageDir, _ := cmd.Flags().GetString("extract-images"); imageDir != "" {
		return extractImages(cmd, path, imageDir)
	}

	blocks, err := pdf.ExtractTextBlocks(path)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(blocks)
	}

	lastPage := 0
	for _, block := range blocks {
		if block.Page != lastPage {
			if lastPage != 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			lastPage = block.Page
		}
		fmt.Fprintln(cmd.OutOrStdout(), block.Text)
	}
	return nil
}

// extractImages writes the PDF's embedded images into dir and reports
// each extracted file with its source page.
func extractImages(cmd *cobra.Command, path, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create image dir %s: %w", dir, err)
	}
	images, err := pdf.ExtractEmbeddedImages(path, dir)
	if err != nil {
		return err
	}
	for _, img := range images {
		fmt.Fprintf(cmd.OutOrStdout(), "page %d: %s\n", img.Page, img.Path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d images to %s\n", len(images), dir)
	return nil
}

func init() {
	pdfCmd.Flags().StringP("format", "f", "text", "output format (text, json)")
	pdfCmd.Flags().String("extract-images", "", "extract embedded images into this directory instead of dumping text")

	rootCmd.AddCommand(pdfCmd)
}
