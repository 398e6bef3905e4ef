package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FitoDomik/pdf-to-docx/internal/classify"
	"github.com/FitoDomik/pdf-to-docx/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDoc(t *testing.T, doc document.StructuredDocument) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Write(doc, &buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		parts[f.Name] = string(data)
	}
	return parts
}

func TestWrite_PackageParts(t *testing.T) {
	parts := renderDoc(t, document.StructuredDocument{})

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/numbering.xml",
		"word/document.xml",
	} {
		assert.Contains(t, parts, name)
	}
}

func TestWrite_StyleMapping(t *testing.T) {
	doc := document.StructuredDocument{Pages: []document.ReadingOrderPage{{
		Elements: []document.TextElement{
			{Text: "TITLE", Role: classify.Heading},
			{Text: "plain body", Role: classify.Paragraph},
			{Text: "• bullet item", Role: classify.ListItem},
			{Text: "1. numbered item", Role: classify.ListItem},
		},
	}}}

	body := renderDoc(t, doc)["word/document.xml"]

	assert.Contains(t, body, `<w:pStyle w:val="Heading1"/>`)
	assert.Contains(t, body, `<w:pStyle w:val="Normal"/>`)
	assert.Contains(t, body, `<w:pStyle w:val="ListBullet"/>`)
	assert.Contains(t, body, `<w:pStyle w:val="ListNumber"/>`)
	assert.Contains(t, body, `<w:numId w:val="1"/>`)
	assert.Contains(t, body, `<w:numId w:val="2"/>`)
}

func TestWrite_PageBreaks(t *testing.T) {
	page := func(text string) document.ReadingOrderPage {
		return document.ReadingOrderPage{Elements: []document.TextElement{
			{Text: text, Role: classify.Paragraph},
		}}
	}
	doc := document.StructuredDocument{Pages: []document.ReadingOrderPage{
		page("one"), page("two"), page("three"),
	}}

	body := renderDoc(t, doc)["word/document.xml"]

	breaks := strings.Count(body, `<w:br w:type="page"/>`)
	assert.Equal(t, 2, breaks, "break between consecutive pages, none after the last")

	// Pages appear in order
	assert.Less(t, strings.Index(body, ">one<"), strings.Index(body, ">two<"))
	assert.Less(t, strings.Index(body, ">two<"), strings.Index(body, ">three<"))
}

func TestWrite_SinglePageHasNoBreak(t *testing.T) {
	doc := document.StructuredDocument{Pages: []document.ReadingOrderPage{{
		Elements: []document.TextElement{{Text: "only page", Role: classify.Paragraph}},
	}}}

	body := renderDoc(t, doc)["word/document.xml"]
	assert.NotContains(t, body, `<w:br w:type="page"/>`)
}

func TestWrite_EmptyPagesPreserved(t *testing.T) {
	// A placeholder-free empty page still produces its page break
	doc := document.StructuredDocument{Pages: []document.ReadingOrderPage{
		{}, {Elements: []document.TextElement{{Text: "after blank", Role: classify.Paragraph}}},
	}}

	body := renderDoc(t, doc)["word/document.xml"]
	assert.Equal(t, 1, strings.Count(body, `<w:br w:type="page"/>`))
	assert.Contains(t, body, "after blank")
}

func TestWrite_EscapesMarkup(t *testing.T) {
	doc := document.StructuredDocument{Pages: []document.ReadingOrderPage{{
		Elements: []document.TextElement{
			{Text: `a < b & "c"`, Role: classify.Paragraph},
		},
	}}}

	body := renderDoc(t, doc)["word/document.xml"]
	assert.Contains(t, body, "a &lt; b &amp;")
	assert.NotContains(t, body, `a < b`)
}

func TestWrite_SectionProperties(t *testing.T) {
	body := renderDoc(t, document.StructuredDocument{})["word/document.xml"]

	assert.Contains(t, body, `<w:pgSz w:w="11906" w:h="16838"/>`)
	assert.Contains(t, body, `<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/>`)
}

func TestWrite_StylesAndNumberingDefinitions(t *testing.T) {
	parts := renderDoc(t, document.StructuredDocument{})

	styles := parts["word/styles.xml"]
	for _, id := range []string{"Normal", "Heading1", "ListBullet", "ListNumber"} {
		assert.Contains(t, styles, `w:styleId="`+id+`"`)
	}

	numbering := parts["word/numbering.xml"]
	assert.Contains(t, numbering, `<w:num w:numId="1">`)
	assert.Contains(t, numbering, `<w:num w:numId="2">`)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	doc := document.StructuredDocument{Pages: []document.ReadingOrderPage{{
		Elements: []document.TextElement{{Text: "hello", Role: classify.Paragraph}},
	}}}

	require.NoError(t, WriteFile(doc, path))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, zr.Close()) }()
	assert.NotEmpty(t, zr.File)
}
