// Package pipeline drives the per-image conversion steps across a batch:
// recognition, adaptation, early classification, reading-order
// reconstruction, and final assembly.
package pipeline

import (
	"context"
	"fmt"

	"github.com/FitoDomik/pdf-to-docx/internal/adapter"
	"github.com/FitoDomik/pdf-to-docx/internal/classify"
	"github.com/FitoDomik/pdf-to-docx/internal/document"
	"github.com/FitoDomik/pdf-to-docx/internal/layout"
	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
)

// Controller processes a batch of images strictly in input order. Each
// image's recognize/adapt/classify sequence is isolated: a failure yields
// one placeholder page and the batch continues, so the output document
// always has exactly one page per input image. Only an unusable engine
// aborts the whole batch.
type Controller struct {
	engine   ocr.Engine
	progress ProgressCallback
}

// NewController creates a batch controller for the given engine. A nil
// engine is rejected up front as an engine-availability error. A nil
// progress callback disables progress reporting.
func NewController(engine ocr.Engine, progress ProgressCallback) (*Controller, error) {
	if engine == nil {
		return nil, fmt.Errorf("%w: no engine provided", ocr.ErrEngineUnavailable)
	}
	if progress == nil {
		progress = NoOpProgressCallback{}
	}
	return &Controller{engine: engine, progress: progress}, nil
}

// Run processes the images sequentially and assembles the structured
// document. Progress is reported after each completed image. An empty
// input yields an empty document without error.
func (c *Controller) Run(ctx context.Context, images []string) (document.StructuredDocument, error) {
	if len(images) == 0 {
		return document.StructuredDocument{Pages: []document.ReadingOrderPage{}}, nil
	}

	total := len(images)
	c.progress.OnStart(total)

	pages := make([]document.PageResult, 0, total)
	for i, ref := range images {
		pages = append(pages, c.processImage(ctx, i, ref))
		c.progress.OnProgress(i+1, total)
	}
	c.progress.OnComplete()

	return document.Assemble(layout.ReconstructAll(pages)), nil
}

// processImage runs recognize/adapt/classify for one image. It never
// fails: any error becomes the page's placeholder content.
func (c *Controller) processImage(ctx context.Context, index int, ref string) document.PageResult {
	raw, err := c.engine.Recognize(ctx, ref)
	if err != nil {
		c.progress.OnError(index, err)
		return adapter.PlaceholderPage(ref, err)
	}

	page := adapter.Adapt(raw, ref)
	ClassifyPage(&page)
	return page
}

// ClassifyPage runs the per-line classification pass on a freshly adapted
// page. Whole-page transcriptions stay unclassified until the
// assembly-time pass; error placeholders are never reclassified.
func ClassifyPage(page *document.PageResult) {
	if page.Shape == document.ShapeWholePage || page.Shape == document.ShapeError {
		return
	}
	rich := page.Shape.Rich()
	for i := range page.Elements {
		el := &page.Elements[i]
		if el.Role == classify.ErrorPlaceholder {
			continue
		}
		el.Role = classify.Line(el.Text, el.Confidence, rich)
	}
}
