// Package classify assigns structural roles to recognized text elements.
//
// Two passes exist in the pipeline: an early per-line pass applied right
// after result adaptation (Line) and a late per-document pass applied during
// structure analysis (Element). The two deliberately use different heading
// heuristics; downstream consumers rely on the literal thresholds used here.
package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role identifies the structural function of a text element on a page.
type Role string

const (
	// Unclassified marks an element that has not been through any
	// classification pass yet (e.g., whole-page transcriptions).
	Unclassified Role = "unclassified"
	Heading      Role = "heading"
	ListItem     Role = "list_item"
	Paragraph    Role = "paragraph"
	// ErrorPlaceholder marks the synthetic element standing in for a page
	// that failed recognition or adaptation. It is never reclassified.
	ErrorPlaceholder Role = "error_placeholder"
)

// Bullet glyphs that mark a list item when they prefix the trimmed text.
var bulletGlyphs = []string{"•", "-", "*", "○", "▪", "▫"}

// numberedPattern matches a leading "1. " / "12 " style list prefix.
var numberedPattern = regexp.MustCompile(`^\d+\.?\s`)

// Line performs the early per-line classification applied immediately after
// adaptation. Only results from the rich named-fields shapes carry reliable
// per-line confidences, so the heading shortcut is gated on rich.
func Line(text string, confidence float64, rich bool) Role {
	if rich && utf8.RuneCountInString(text) < 50 && confidence > 0.9 {
		return Heading
	}
	return Paragraph
}

// Element performs the full per-document classification used during
// structure analysis. Rules apply in order, first match wins. The prior
// role is consulted only for the error-placeholder pass-through.
func Element(prior Role, text string) Role {
	if prior == ErrorPlaceholder {
		return ErrorPlaceholder
	}
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= 100 && isUpper(trimmed) {
		return Heading
	}
	if utf8.RuneCountInString(text) < 100 && strings.HasSuffix(trimmed, ":") {
		return Heading
	}
	if IsBulleted(text) || IsNumbered(text) {
		return ListItem
	}
	return Paragraph
}

// IsBulleted reports whether the trimmed text starts with a bullet glyph.
func IsBulleted(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(trimmed, g) {
			return true
		}
	}
	return false
}

// IsNumbered reports whether the trimmed text starts with a numeric-dot
// list prefix such as "1. " or "12 ".
func IsNumbered(text string) bool {
	return numberedPattern.MatchString(strings.TrimSpace(text))
}

// isUpper reports whether s contains at least one cased rune and no
// lower-case runes. Digits and punctuation are allowed, mirroring the
// semantics of a case check on the trimmed text.
func isUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
