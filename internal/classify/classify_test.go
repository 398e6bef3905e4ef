package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine_RichShapes(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		confidence float64
		expected   Role
	}{
		{
			name:       "short confident line becomes heading",
			text:       "INTRODUCTION",
			confidence: 0.95,
			expected:   Heading,
		},
		{
			name:       "confidence at threshold stays paragraph",
			text:       "INTRODUCTION",
			confidence: 0.9,
			expected:   Paragraph,
		},
		{
			name:       "forty-nine runes is still short enough",
			text:       strings.Repeat("a", 49),
			confidence: 0.95,
			expected:   Heading,
		},
		{
			name:       "fifty runes is too long",
			text:       strings.Repeat("a", 50),
			confidence: 0.95,
			expected:   Paragraph,
		},
		{
			name:       "low confidence stays paragraph",
			text:       "Short",
			confidence: 0.5,
			expected:   Paragraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Line(tt.text, tt.confidence, true))
		})
	}
}

func TestLine_PlainShapesNeverHeading(t *testing.T) {
	// Without per-line confidences the heading shortcut is disabled
	assert.Equal(t, Paragraph, Line("INTRODUCTION", 0.99, false))
	assert.Equal(t, Paragraph, Line("x", 1.0, false))
}

func TestLine_CyrillicRuneCount(t *testing.T) {
	// 40 Cyrillic runes are 80 bytes; the length check counts runes
	text := strings.Repeat("Д", 40)
	assert.Equal(t, Heading, Line(text, 0.95, true))
}

func TestElement(t *testing.T) {
	tests := []struct {
		name     string
		prior    Role
		text     string
		expected Role
	}{
		{
			name:     "error placeholder passes through",
			prior:    ErrorPlaceholder,
			text:     "RECOGNITION ERROR: boom",
			expected: ErrorPlaceholder,
		},
		{
			name:     "all caps short line is a heading",
			prior:    Paragraph,
			text:     "CHAPTER ONE",
			expected: Heading,
		},
		{
			name:     "colon suffix is a heading",
			prior:    Paragraph,
			text:     "Ingredients:",
			expected: Heading,
		},
		{
			name:     "bullet prefix is a list item",
			prior:    Paragraph,
			text:     "• first point",
			expected: ListItem,
		},
		{
			name:     "dash prefix is a list item",
			prior:    Paragraph,
			text:     "- second point",
			expected: ListItem,
		},
		{
			name:     "numbered prefix is a list item",
			prior:    Paragraph,
			text:     "1. do this",
			expected: ListItem,
		},
		{
			name:     "numbered without dot is a list item",
			prior:    Paragraph,
			text:     "12 volts required",
			expected: ListItem,
		},
		{
			name:     "plain text is a paragraph",
			prior:    Heading,
			text:     "This is ordinary body text.",
			expected: Paragraph,
		},
		{
			name:     "digits only never make a heading",
			prior:    Paragraph,
			text:     "2024",
			expected: Paragraph,
		},
		{
			name:     "upper heading beats colon rule",
			prior:    Paragraph,
			text:     "SUMMARY:",
			expected: Heading,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Element(tt.prior, tt.text))
		})
	}
}

func TestElement_LengthBoundaries(t *testing.T) {
	// Upper-case rule admits exactly 100 runes, the colon rule only 99
	caps := strings.Repeat("A", 100)
	assert.Equal(t, Heading, Element(Paragraph, caps))
	assert.Equal(t, Paragraph, Element(Paragraph, caps+"A"))

	colon := strings.Repeat("a", 98) + ":"
	assert.Equal(t, Heading, Element(Paragraph, colon))
	assert.Equal(t, Paragraph, Element(Paragraph, strings.Repeat("a", 99)+":"))
}

func TestElement_MixedCaseScenario(t *testing.T) {
	// A page mixing every rule, in the order a scan would produce them
	texts := []string{
		"DOCUMENT TITLE",
		"Overview:",
		"The first paragraph of body text follows the title.",
		"• keep it short",
		"2. number two",
	}
	expected := []Role{Heading, Heading, Paragraph, ListItem, ListItem}
	for i, text := range texts {
		assert.Equal(t, expected[i], Element(Unclassified, text), "text %q", text)
	}
}

func TestIsBulleted(t *testing.T) {
	assert.True(t, IsBulleted("  • indented bullet"))
	assert.True(t, IsBulleted("* star"))
	assert.True(t, IsBulleted("○ hollow"))
	assert.False(t, IsBulleted("no bullet here"))
	assert.False(t, IsBulleted(""))
}

func TestIsNumbered(t *testing.T) {
	assert.True(t, IsNumbered("1. item"))
	assert.True(t, IsNumbered("42 item"))
	assert.False(t, IsNumbered("1must have space"))
	assert.False(t, IsNumbered("item 1."))
	assert.False(t, IsNumbered(""))
}
