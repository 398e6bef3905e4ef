// Package document defines the canonical document model produced by the
// conversion pipeline: positioned text elements, per-page collections, and
// the assembled structured document handed to output writers.
package document

import (
	"github.com/FitoDomik/pdf-to-docx/internal/classify"
)

// Point is a single 2D coordinate in source-image pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Quad is the quadrilateral bounding a text element. It always holds
// exactly four points, in the order supplied by the recognition engine.
type Quad [4]Point

// DefaultConfidence is assumed when an engine does not report a score.
const DefaultConfidence = 0.9

// PlaceholderQuad returns the fixed bounds used for synthetic elements
// standing in for failed recognition.
func PlaceholderQuad() Quad {
	return Quad{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
}

// QuadFromPoints builds a Quad from an arbitrary point list. Short input is
// padded with the last point; extra points are dropped.
func QuadFromPoints(pts []Point) Quad {
	var q Quad
	if len(pts) == 0 {
		return q
	}
	for i := range q {
		if i < len(pts) {
			q[i] = pts[i]
		} else {
			q[i] = pts[len(pts)-1]
		}
	}
	return q
}

// TextElement is one recognized span of text on a page.
type TextElement struct {
	Text       string        `json:"text"`
	Confidence float64       `json:"confidence"`
	Bounds     Quad          `json:"bounds"`
	Role       classify.Role `json:"role"`
}

// SourceShape records which adapter path produced a page result.
type SourceShape string

const (
	// ShapeFields is the rich result object with parallel text, polygon
	// and score collections.
	ShapeFields SourceShape = "fields"
	// ShapeKeyed is a mapping carrying the same three collections.
	ShapeKeyed SourceShape = "keyed"
	// ShapeLines is a sequence of per-line entries.
	ShapeLines SourceShape = "lines"
	// ShapeWholePage is a single whole-page transcription without boxes.
	ShapeWholePage SourceShape = "whole_page"
	// ShapeError marks a page synthesized from an adaptation failure.
	ShapeError SourceShape = "error"
)

// Rich reports whether the shape exposes named per-line score fields,
// which gates the early heading classification.
func (s SourceShape) Rich() bool {
	return s == ShapeFields || s == ShapeKeyed
}

// PageResult is the adaptation output for one source image. Element order
// is the adapter's emission order, not yet reading order.
type PageResult struct {
	SourceRef string        `json:"source_ref"`
	Shape     SourceShape   `json:"shape"`
	Elements  []TextElement `json:"elements"`
}

// ReadingOrderPage is a page whose elements have been re-sorted into
// reading order. Produced exclusively by the layout package.
type ReadingOrderPage struct {
	SourceRef string        `json:"source_ref"`
	Elements  []TextElement `json:"elements"`
}

// StructuredDocument is the final assembled model, one page per input
// image. A page break is implied between consecutive pages.
type StructuredDocument struct {
	Pages []ReadingOrderPage `json:"pages"`
}

// PageBreakAfter reports whether a page break follows page i: between
// every pair of consecutive pages, never after the last.
func (d StructuredDocument) PageBreakAfter(i int) bool {
	return i >= 0 && i < len(d.Pages)-1
}
