package document

import (
	"testing"

	"github.com/FitoDomik/pdf-to-docx/internal/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_PreservesPageCountAndOrder(t *testing.T) {
	pages := []ReadingOrderPage{
		{SourceRef: "page1.png", Elements: []TextElement{{Text: "TITLE", Role: classify.Paragraph}}},
		{SourceRef: "page2.png", Elements: nil},
		{SourceRef: "page3.png", Elements: []TextElement{{Text: "body", Role: classify.Paragraph}}},
	}

	doc := Assemble(pages)

	require.Len(t, doc.Pages, 3)
	assert.Equal(t, "page1.png", doc.Pages[0].SourceRef)
	assert.Equal(t, "page2.png", doc.Pages[1].SourceRef)
	assert.Equal(t, "page3.png", doc.Pages[2].SourceRef)
	assert.Empty(t, doc.Pages[1].Elements, "empty pages survive assembly")
}

func TestAssemble_EmptyInput(t *testing.T) {
	doc := Assemble(nil)
	assert.Empty(t, doc.Pages)

	doc = Assemble([]ReadingOrderPage{})
	assert.Empty(t, doc.Pages)
}

func TestAssemble_ReclassifiesElements(t *testing.T) {
	// Whole-page transcriptions arrive unclassified and settle during
	// assembly. Early-pass headings can be demoted by the stricter rules.
	pages := []ReadingOrderPage{
		{SourceRef: "scan.png", Elements: []TextElement{
			{Text: "CHAPTER ONE", Role: classify.Unclassified},
			{Text: "A sentence of body text.", Role: classify.Heading},
			{Text: "• bullet", Role: classify.Paragraph},
		}},
	}

	doc := Assemble(pages)

	require.Len(t, doc.Pages, 1)
	els := doc.Pages[0].Elements
	require.Len(t, els, 3)
	assert.Equal(t, classify.Heading, els[0].Role)
	assert.Equal(t, classify.Paragraph, els[1].Role)
	assert.Equal(t, classify.ListItem, els[2].Role)
}

func TestAssemble_KeepsErrorPlaceholders(t *testing.T) {
	pages := []ReadingOrderPage{
		{SourceRef: "bad.png", Elements: []TextElement{
			{Text: "RECOGNITION ERROR: engine crashed", Role: classify.ErrorPlaceholder},
		}},
	}

	doc := Assemble(pages)

	require.Len(t, doc.Pages, 1)
	require.Len(t, doc.Pages[0].Elements, 1)
	assert.Equal(t, classify.ErrorPlaceholder, doc.Pages[0].Elements[0].Role)
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		name     string
		element  TextElement
		expected ParagraphStyle
	}{
		{
			name:     "heading role",
			element:  TextElement{Text: "TITLE", Role: classify.Heading},
			expected: StyleHeading1,
		},
		{
			name:     "bulleted list item",
			element:  TextElement{Text: "• point", Role: classify.ListItem},
			expected: StyleListBullet,
		},
		{
			name:     "numbered list item",
			element:  TextElement{Text: "1. point", Role: classify.ListItem},
			expected: StyleListNumber,
		},
		{
			name:     "paragraph",
			element:  TextElement{Text: "plain text", Role: classify.Paragraph},
			expected: StyleNormal,
		},
		{
			name:     "placeholder renders as normal text",
			element:  TextElement{Text: "RECOGNITION ERROR: x", Role: classify.ErrorPlaceholder},
			expected: StyleNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StyleFor(tt.element))
		})
	}
}
