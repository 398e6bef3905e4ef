// Package convert orchestrates whole-file conversion: input collection
// (PDFs rasterized to per-page images, images passed through), the batch
// recognition pipeline, and the docx writer.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/FitoDomik/pdf-to-docx/internal/document"
	"github.com/FitoDomik/pdf-to-docx/internal/docx"
	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
	"github.com/FitoDomik/pdf-to-docx/internal/pdf"
	"github.com/FitoDomik/pdf-to-docx/internal/pipeline"
	"github.com/FitoDomik/pdf-to-docx/internal/utils"
)

// Options tunes a conversion run.
type Options struct {
	// PageRange restricts PDF page extraction ("1-5", "1,3,5"); empty
	// selects all pages.
	PageRange string
	// OnProgress receives the overall conversion percentage: 10 after
	// input preparation, 10..80 during recognition, 80 after assembly,
	// 100 once the output file is committed. Nil disables reporting.
	OnProgress func(percent int)
	// Progress optionally receives the pipeline's per-image reports in
	// addition to OnProgress.
	Progress pipeline.ProgressCallback
}

// Run converts the given input files (PDFs or images) into a structured
// document and, when outputPath is non-empty, writes it as a .docx file.
// Page order follows input order, with PDF pages expanded in place.
func Run(ctx context.Context, inputs []string, outputPath string, engine ocr.Engine, opts Options) (document.StructuredDocument, error) {
	report := opts.OnProgress
	if report == nil {
		report = func(int) {}
	}

	images, cleanup, err := CollectImages(inputs, opts.PageRange)
	if err != nil {
		return document.StructuredDocument{}, err
	}
	defer cleanup()
	report(10)

	progress := pipeline.ProgressCallback(pipeline.PercentCallback{Fn: report})
	if opts.Progress != nil {
		progress = pipeline.NewMultiProgressCallback(progress, opts.Progress)
	}

	controller, err := pipeline.NewController(engine, progress)
	if err != nil {
		return document.StructuredDocument{}, err
	}

	doc, err := controller.Run(ctx, images)
	if err != nil {
		return document.StructuredDocument{}, err
	}
	report(80)

	if outputPath != "" {
		if err := docx.WriteFile(doc, outputPath); err != nil {
			return document.StructuredDocument{}, err
		}
	}
	report(100)
	return doc, nil
}

// CollectImages expands the input files into an ordered list of image
// paths: images pass through, PDFs contribute one image per page in page
// order. The returned cleanup removes any temporary extraction
// directories and must be called after the images are no longer needed.
func CollectImages(inputs []string, pageRange string) ([]string, func(), error) {
	var images []string
	var tempDirs []string
	cleanup := func() {
		for _, dir := range tempDirs {
			if err := os.RemoveAll(dir); err != nil {
				slog.Warn("failed to remove temp dir", "dir", dir, "error", err)
			}
		}
	}

	for _, input := range inputs {
		switch {
		case utils.IsPDF(input):
			dir, err := os.MkdirTemp("", "pdf-pages-*")
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("create temp dir: %w", err)
			}
			tempDirs = append(tempDirs, dir)

			pages, err := pdf.ExtractPageImages(input, pageRange, dir)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("extract pages from %s: %w", input, err)
			}
			for _, p := range pages {
				images = append(images, p.Path)
			}
		case utils.IsSupportedImage(input):
			images = append(images, input)
		default:
			cleanup()
			return nil, nil, fmt.Errorf("unsupported input file: %s", input)
		}
	}
	return images, cleanup, nil
}
