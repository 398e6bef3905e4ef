package layout

import (
	"sort"
	"testing"

	"github.com/FitoDomik/pdf-to-docx/internal/document"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func pageFromYs(ys []float64) document.PageResult {
	els := make([]document.TextElement, len(ys))
	for i, y := range ys {
		els[i] = document.TextElement{
			Bounds: document.Quad{{X: 0, Y: y}},
		}
	}
	return document.PageResult{Elements: els}
}

// TestReconstruct_Properties verifies ordering invariants over random
// vertical positions.
func TestReconstruct_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	genYs := gen.SliceOf(gen.Float64Range(0, 10000))

	properties.Property("output is sorted by first-point Y", prop.ForAll(
		func(ys []float64) bool {
			ordered := Reconstruct(pageFromYs(ys))
			return sort.SliceIsSorted(ordered.Elements, func(i, j int) bool {
				return ordered.Elements[i].Bounds[0].Y < ordered.Elements[j].Bounds[0].Y
			})
		},
		genYs,
	))

	properties.Property("element count is preserved", prop.ForAll(
		func(ys []float64) bool {
			return len(Reconstruct(pageFromYs(ys)).Elements) == len(ys)
		},
		genYs,
	))

	properties.Property("reconstruct is idempotent", prop.ForAll(
		func(ys []float64) bool {
			once := Reconstruct(pageFromYs(ys))
			twice := Reconstruct(document.PageResult{Elements: once.Elements})
			for i := range once.Elements {
				if once.Elements[i].Bounds != twice.Elements[i].Bounds {
					return false
				}
			}
			return true
		},
		genYs,
	))

	properties.TestingRun(t)
}
