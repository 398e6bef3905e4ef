// Package ocr provides the recognition capability consumed by the
// conversion pipeline. Engines are black boxes: one image in, one raw
// result out. Raw results are engine- and version-specific; the adapter
// package normalizes them, so engines are free to return any of the
// supported shapes.
package ocr

import "context"

// RawResult is the unprocessed output of one recognition call. Supported
// shapes, in the order the adapter probes them:
//
//   - Fields: a result object with parallel text/polygon/score collections
//   - map[string]any carrying "rec_texts"/"rec_polys"/"rec_scores" keys
//   - []any of per-line entries (pair, triple, or map form)
//   - Transcript: a single whole-page transcription without line boxes
type RawResult any

// Fields is the rich result shape with parallel collections. Scores and
// polygons are loosely typed because engine versions disagree on their
// element types; the adapter coerces them.
type Fields struct {
	Texts  []string
	Polys  []any
	Scores []any
}

// Transcript is a whole-page transcription from an engine that does not
// report per-line boxes. Width and height are the source image's pixel
// dimensions, used as the bounding quadrilateral.
type Transcript struct {
	Text   string
	Width  int
	Height int
}

// Engine is the recognition capability contract.
type Engine interface {
	// Name returns the engine identifier (e.g., "tesseract").
	Name() string
	// Recognize runs OCR on the image at the given path.
	Recognize(ctx context.Context, imagePath string) (RawResult, error)
	// Close releases engine resources.
	Close() error
}
