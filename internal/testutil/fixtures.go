package testutil

import (
	"github.com/FitoDomik/pdf-to-docx/internal/document"
	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
)

// RectCoords returns a clockwise four-point rectangle as raw coordinate
// pairs, the way recognition backends report bounding polygons.
func RectCoords(x, y, w, h float64) [][]float64 {
	return [][]float64{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
	}
}

// RectQuad returns the same rectangle as a document quad.
func RectQuad(x, y, w, h float64) document.Quad {
	return document.Quad{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

// FieldsResult builds a field-style raw result with one rectangle per
// text, stacked vertically in the given order.
func FieldsResult(texts []string, scores []float64) ocr.Fields {
	polys := make([]any, len(texts))
	for i := range texts {
		polys[i] = RectCoords(0, float64(i)*20, 200, 16)
	}
	anyScores := make([]any, len(scores))
	for i, s := range scores {
		anyScores[i] = s
	}
	return ocr.Fields{Texts: texts, Polys: polys, Scores: anyScores}
}

// KeyedResult builds a map-style raw result with rec_texts, rec_polys
// and rec_scores keys.
func KeyedResult(texts []string, scores []float64) map[string]any {
	polys := make([]any, len(texts))
	for i := range texts {
		polys[i] = RectCoords(0, float64(i)*20, 200, 16)
	}
	anyScores := make([]any, len(scores))
	for i, s := range scores {
		anyScores[i] = s
	}
	return map[string]any{
		"rec_texts":  texts,
		"rec_polys":  polys,
		"rec_scores": anyScores,
	}
}

// ListLine builds a list-form line entry: [coords, text, confidence].
func ListLine(coords [][]float64, text string, confidence float64) []any {
	return []any{coords, text, confidence}
}

// PairLine builds a pair-form line entry: [coords, [text, confidence]].
func PairLine(coords [][]float64, text string, confidence float64) []any {
	return []any{coords, []any{text, confidence}}
}

// MapLine builds a map-form line entry with box, text and confidence keys.
func MapLine(coords [][]float64, text string, confidence float64) map[string]any {
	return map[string]any{
		"box":        coords,
		"text":       text,
		"confidence": confidence,
	}
}
