package layout

import (
	"testing"

	"github.com/FitoDomik/pdf-to-docx/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elementAt(text string, y float64) document.TextElement {
	return document.TextElement{
		Text:   text,
		Bounds: document.Quad{{X: 0, Y: y}, {X: 100, Y: y}, {X: 100, Y: y + 10}, {X: 0, Y: y + 10}},
	}
}

func TestReconstruct_SortsByVerticalPosition(t *testing.T) {
	page := document.PageResult{
		SourceRef: "page.png",
		Shape:     document.ShapeLines,
		Elements: []document.TextElement{
			elementAt("second", 50),
			elementAt("first", 10),
		},
	}

	ordered := Reconstruct(page)

	require.Len(t, ordered.Elements, 2)
	assert.Equal(t, "first", ordered.Elements[0].Text)
	assert.Equal(t, "second", ordered.Elements[1].Text)
	assert.Equal(t, "page.png", ordered.SourceRef)
}

func TestReconstruct_StableOnTies(t *testing.T) {
	// Same Y keeps emission order
	page := document.PageResult{
		Elements: []document.TextElement{
			elementAt("left", 20),
			elementAt("right", 20),
			elementAt("top", 0),
		},
	}

	ordered := Reconstruct(page)

	require.Len(t, ordered.Elements, 3)
	assert.Equal(t, "top", ordered.Elements[0].Text)
	assert.Equal(t, "left", ordered.Elements[1].Text)
	assert.Equal(t, "right", ordered.Elements[2].Text)
}

func TestReconstruct_DoesNotMutateInput(t *testing.T) {
	page := document.PageResult{
		Elements: []document.TextElement{
			elementAt("b", 50),
			elementAt("a", 10),
		},
	}

	_ = Reconstruct(page)

	assert.Equal(t, "b", page.Elements[0].Text, "input page must not be reordered")
}

func TestReconstruct_EmptyPage(t *testing.T) {
	ordered := Reconstruct(document.PageResult{SourceRef: "empty.png"})
	assert.Equal(t, "empty.png", ordered.SourceRef)
	assert.Empty(t, ordered.Elements)
}

func TestReconstructAll_PreservesPageOrder(t *testing.T) {
	pages := []document.PageResult{
		{SourceRef: "1.png", Elements: []document.TextElement{elementAt("x", 90), elementAt("y", 5)}},
		{SourceRef: "2.png"},
	}

	out := ReconstructAll(pages)

	require.Len(t, out, 2)
	assert.Equal(t, "1.png", out[0].SourceRef)
	assert.Equal(t, "2.png", out[1].SourceRef)
	assert.Equal(t, "y", out[0].Elements[0].Text)
}
