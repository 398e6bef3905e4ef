package adapter

import (
	"github.com/FitoDomik/pdf-to-docx/internal/document"
)

// coerceConfidence converts a loosely typed score to a float64 in [0,1].
// Non-numeric values (including nil) fall back to the default confidence.
func coerceConfidence(v any) float64 {
	if f, ok := toFloat(v); ok {
		return f
	}
	return document.DefaultConfidence
}

// toFloat converts the numeric types engines are known to emit.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}

// toAnySlice widens the collection types engines emit into []any.
func toAnySlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	case []float64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	case []float32:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	case [][][]float64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	case []document.Quad:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	default:
		return nil
	}
}

// coerceQuad converts loosely typed coordinates into the canonical
// four-point quadrilateral. Nested numeric arrays pass through as points
// in their given order; float32 arrays are widened. Anything that cannot
// be interpreted falls back to the fixed default box.
func coerceQuad(v any) document.Quad {
	switch c := v.(type) {
	case document.Quad:
		return c
	case []document.Point:
		if len(c) > 0 {
			return document.QuadFromPoints(c)
		}
	case [][]float64:
		if pts := pointsFromPairs(len(c), func(i int) ([]float64, bool) { return c[i], true }); len(pts) > 0 {
			return document.QuadFromPoints(pts)
		}
	case [][]float32:
		if pts := pointsFromPairs(len(c), func(i int) ([]float64, bool) { return widen(c[i]), true }); len(pts) > 0 {
			return document.QuadFromPoints(pts)
		}
	case []any:
		pts := make([]document.Point, 0, len(c))
		for _, item := range c {
			if p, ok := toPoint(item); ok {
				pts = append(pts, p)
			}
		}
		if len(pts) > 0 {
			return document.QuadFromPoints(pts)
		}
	}
	return document.PlaceholderQuad()
}

// toPoint interprets one coordinate pair.
func toPoint(v any) (document.Point, bool) {
	switch p := v.(type) {
	case document.Point:
		return p, true
	case []float64:
		if len(p) >= 2 {
			return document.Point{X: p[0], Y: p[1]}, true
		}
	case []float32:
		if len(p) >= 2 {
			return document.Point{X: float64(p[0]), Y: float64(p[1])}, true
		}
	case []int:
		if len(p) >= 2 {
			return document.Point{X: float64(p[0]), Y: float64(p[1])}, true
		}
	case []any:
		if len(p) >= 2 {
			x, okX := toFloat(p[0])
			y, okY := toFloat(p[1])
			if okX && okY {
				return document.Point{X: x, Y: y}, true
			}
		}
	}
	return document.Point{}, false
}

func pointsFromPairs(n int, at func(int) ([]float64, bool)) []document.Point {
	pts := make([]document.Point, 0, n)
	for i := range n {
		pair, ok := at(i)
		if !ok || len(pair) < 2 {
			continue
		}
		pts = append(pts, document.Point{X: pair[0], Y: pair[1]})
	}
	return pts
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
