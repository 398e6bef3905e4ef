// Package docx serializes a structured document into a Word (.docx)
// package: a zip archive of WordprocessingML parts. The writer honors the
// pipeline's style mapping (Heading 1, List Bullet, List Number, Normal)
// and inserts a page break between consecutive pages.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FitoDomik/pdf-to-docx/internal/document"
)

// styleIDs maps paragraph styles to their WordprocessingML style IDs.
var styleIDs = map[document.ParagraphStyle]string{
	document.StyleNormal:     "Normal",
	document.StyleHeading1:   "Heading1",
	document.StyleListBullet: "ListBullet",
	document.StyleListNumber: "ListNumber",
}

// Numbering definition IDs referenced from list paragraphs.
const (
	bulletNumID   = 1
	numberedNumID = 2
)

// WriteFile serializes the document to a .docx file at path.
func WriteFile(doc document.StructuredDocument, path string) error {
	f, err := os.Create(path) //nolint:gosec // G304: user-chosen output path is expected
	if err != nil {
		return fmt.Errorf("create output file %s: %w", path, err)
	}
	if err := Write(doc, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file %s: %w", path, err)
	}
	return nil
}

// Write serializes the document as a docx package to w.
func Write(doc document.StructuredDocument, w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
		{"word/document.xml", documentXML(doc)},
	}
	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create package part %s: %w", part.name, err)
		}
		if _, err := io.WriteString(pw, part.content); err != nil {
			return fmt.Errorf("write package part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize docx package: %w", err)
	}
	return nil
}

// documentXML renders word/document.xml: one paragraph per element, a
// page-break paragraph between consecutive pages, and a section block
// with one-inch margins.
func documentXML(doc document.StructuredDocument) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for i, page := range doc.Pages {
		for _, el := range page.Elements {
			writeParagraph(&sb, el)
		}
		if doc.PageBreakAfter(i) {
			sb.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
		}
	}

	// A4 page with one-inch margins on all sides.
	sb.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeParagraph(sb *strings.Builder, el document.TextElement) {
	style := document.StyleFor(el)
	sb.WriteString(`<w:p><w:pPr>`)
	fmt.Fprintf(sb, `<w:pStyle w:val="%s"/>`, styleIDs[style])
	switch style {
	case document.StyleListBullet:
		fmt.Fprintf(sb, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, bulletNumID)
	case document.StyleListNumber:
		fmt.Fprintf(sb, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, numberedNumID)
	}
	sb.WriteString(`</w:pPr>`)
	fmt.Fprintf(sb, `<w:r><w:t xml:space="preserve">%s</w:t></w:r>`, escapeText(el.Text))
	sb.WriteString(`</w:p>`)
}

// escapeText escapes character data for embedding in the document part.
func escapeText(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
