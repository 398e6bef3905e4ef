// Package layout orders a page's elements into reading order.
package layout

import (
	"sort"

	"github.com/FitoDomik/pdf-to-docx/internal/document"
)

// Reconstruct sorts a page's elements into reading order: ascending by the
// vertical coordinate of each bounding quadrilateral's first point. The
// sort is stable, so ties keep the adapter's emission order and applying
// Reconstruct to an already ordered page is a no-op. Column detection and
// horizontal tie-breaking are intentionally not attempted.
func Reconstruct(page document.PageResult) document.ReadingOrderPage {
	elements := make([]document.TextElement, len(page.Elements))
	copy(elements, page.Elements)

	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Bounds[0].Y < elements[j].Bounds[0].Y
	})

	return document.ReadingOrderPage{
		SourceRef: page.SourceRef,
		Elements:  elements,
	}
}

// ReconstructAll applies Reconstruct to every page, preserving page order.
func ReconstructAll(pages []document.PageResult) []document.ReadingOrderPage {
	out := make([]document.ReadingOrderPage, 0, len(pages))
	for _, p := range pages {
		out = append(out, Reconstruct(p))
	}
	return out
}
