package document

import (
	"github.com/FitoDomik/pdf-to-docx/internal/classify"
)

// ParagraphStyle is the output paragraph convention a writer should apply
// to an element. Values follow word-processor built-in style names.
type ParagraphStyle string

const (
	StyleNormal     ParagraphStyle = "Normal"
	StyleHeading1   ParagraphStyle = "Heading 1"
	StyleListBullet ParagraphStyle = "List Bullet"
	StyleListNumber ParagraphStyle = "List Number"
)

// Assemble maps ordered, classified pages into the final structured
// document. Pages are never reordered or dropped; every element is run
// through the full classification pass so that whole-page transcriptions
// and early-pass roles settle into their final structural role. An empty
// input yields an empty document, not an error.
func Assemble(pages []ReadingOrderPage) StructuredDocument {
	out := StructuredDocument{Pages: make([]ReadingOrderPage, 0, len(pages))}
	for _, page := range pages {
		assembled := ReadingOrderPage{
			SourceRef: page.SourceRef,
			Elements:  make([]TextElement, len(page.Elements)),
		}
		for i, el := range page.Elements {
			el.Role = classify.Element(el.Role, el.Text)
			assembled.Elements[i] = el
		}
		out.Pages = append(out.Pages, assembled)
	}
	return out
}

// StyleFor maps an element to its output paragraph style. List styling is
// re-derived from the literal text prefix even when the role already says
// list item, to distinguish bulleted from numbered lists.
func StyleFor(el TextElement) ParagraphStyle {
	if el.Role == classify.Heading {
		return StyleHeading1
	}
	if classify.IsBulleted(el.Text) {
		return StyleListBullet
	}
	if classify.IsNumbered(el.Text) {
		return StyleListNumber
	}
	return StyleNormal
}
